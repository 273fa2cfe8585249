package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Greater(t, SeverityRank(SeverityHigh), SeverityRank(SeverityMedium))
	assert.Greater(t, SeverityRank(SeverityMedium), SeverityRank(SeverityLow))
	assert.Greater(t, SeverityRank(SeverityLow), SeverityRank(SeverityInformational))
}

func TestSeverityRank_UnknownRanksLowest(t *testing.T) {
	assert.Less(t, SeverityRank(Severity("Bogus")), SeverityRank(SeverityInformational))
}

func TestParseSeverity_Valid(t *testing.T) {
	for _, name := range SeverityNames() {
		sev, err := ParseSeverity(name)
		require.NoError(t, err)
		assert.Equal(t, Severity(name), sev)
	}
}

func TestParseSeverity_Invalid(t *testing.T) {
	_, err := ParseSeverity("Critical")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid alert level")
}

func TestFilterBySeverity_FloorNeverViolated(t *testing.T) {
	alerts := []Alert{
		{Name: "XSS", Risk: SeverityHigh},
		{Name: "Cookie flag", Risk: SeverityLow},
		{Name: "SQLi", Risk: SeverityHigh},
		{Name: "Server banner", Risk: SeverityInformational},
		{Name: "CSP missing", Risk: SeverityMedium},
	}

	for _, min := range []Severity{SeverityInformational, SeverityLow, SeverityMedium, SeverityHigh} {
		for _, a := range FilterBySeverity(alerts, min) {
			assert.GreaterOrEqual(t, SeverityRank(a.Risk), SeverityRank(min))
		}
	}
}

func TestFilterBySeverity_PreservesOrder(t *testing.T) {
	alerts := []Alert{
		{Name: "first", Risk: SeverityHigh},
		{Name: "skipped", Risk: SeverityLow},
		{Name: "second", Risk: SeverityMedium},
		{Name: "third", Risk: SeverityHigh},
	}

	filtered := FilterBySeverity(alerts, SeverityMedium)
	require.Len(t, filtered, 3)
	assert.Equal(t, "first", filtered[0].Name)
	assert.Equal(t, "second", filtered[1].Name)
	assert.Equal(t, "third", filtered[2].Name)
}

func TestFilterBySeverity_AllBelowFloor(t *testing.T) {
	alerts := []Alert{
		{Name: "banner", Risk: SeverityInformational},
		{Name: "cookie", Risk: SeverityLow},
	}
	assert.Empty(t, FilterBySeverity(alerts, SeverityHigh))
}
