package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScanners_Group(t *testing.T) {
	ids, err := ResolveScanners([]string{"xss"})
	require.NoError(t, err)
	assert.Equal(t, []string{"40012", "40014", "40016", "40017"}, ids)
}

func TestResolveScanners_LiteralIDs(t *testing.T) {
	ids, err := ResolveScanners([]string{"1", "40018"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "40018"}, ids)
}

func TestResolveScanners_MixedGroupAndID(t *testing.T) {
	ids, err := ResolveScanners([]string{"sqli", "90019"})
	require.NoError(t, err)
	assert.Equal(t, []string{"40018", "90019"}, ids)
}

func TestResolveScanners_AllIsUnionOfGroups(t *testing.T) {
	ids, err := ResolveScanners([]string{"all"})
	require.NoError(t, err)

	want := map[string]bool{}
	for _, group := range ScannerGroups() {
		for _, id := range GroupIDs(group) {
			want[id] = true
		}
	}
	assert.Len(t, ids, len(want))
	for _, id := range ids {
		assert.True(t, want[id])
	}
}

func TestResolveScanners_Idempotent(t *testing.T) {
	once, err := ResolveScanners([]string{"all"})
	require.NoError(t, err)
	twice, err := ResolveScanners([]string{"all", "all"})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestResolveScanners_DedupesOverlap(t *testing.T) {
	ids, err := ResolveScanners([]string{"xss", "40012"})
	require.NoError(t, err)
	assert.Equal(t, []string{"40012", "40014", "40016", "40017"}, ids)
}

func TestResolveScanners_UnknownToken(t *testing.T) {
	_, err := ResolveScanners([]string{"nosuchgroup"})
	require.Error(t, err)

	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
	assert.Contains(t, err.Error(), "nosuchgroup")
}

func TestResolveScanners_EmptyResolution(t *testing.T) {
	_, err := ResolveScanners([]string{"", "  "})
	require.Error(t, err)

	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
}

func TestScannerGroups_Sorted(t *testing.T) {
	groups := ScannerGroups()
	require.NotEmpty(t, groups)
	assert.IsIncreasing(t, groups)
}
