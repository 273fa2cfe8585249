package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/buemura/zapcli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAlerts() []types.Alert {
	return []types.Alert{
		{Name: "Cross Site Scripting (Reflected)", Risk: types.SeverityHigh, CWEID: "79", URL: "http://example.com/?q=x"},
		{Name: "Cookie No HttpOnly Flag", Risk: types.SeverityLow, CWEID: "1004", URL: "http://example.com/"},
	}
}

func TestGetFormatter(t *testing.T) {
	for _, format := range []string{"table", "json"} {
		f, err := GetFormatter(format)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTableFormatter(t *testing.T) {
	buf := new(bytes.Buffer)
	err := (&TableFormatter{}).Format(buf, sampleAlerts())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Cross Site Scripting (Reflected)")
	assert.Contains(t, out, "Cookie No HttpOnly Flag")
	assert.Contains(t, out, "2 alerts (1 high, 0 medium, 1 low, 0 informational)")
}

func TestTableFormatter_NoAlerts(t *testing.T) {
	buf := new(bytes.Buffer)
	err := (&TableFormatter{}).Format(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "No alerts.\n", buf.String())
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	err := (&JSONFormatter{}).Format(buf, sampleAlerts())
	require.NoError(t, err)

	var decoded []types.Alert
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	// rendering keeps daemon order
	assert.Equal(t, "Cross Site Scripting (Reflected)", decoded[0].Name)
	assert.Equal(t, "Cookie No HttpOnly Flag", decoded[1].Name)
}

func TestJSONFormatter_EmptyIsArray(t *testing.T) {
	buf := new(bytes.Buffer)
	err := (&JSONFormatter{}).Format(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatChoiceDoesNotAlterInclusion(t *testing.T) {
	alerts := sampleAlerts()

	tableBuf := new(bytes.Buffer)
	require.NoError(t, (&TableFormatter{}).Format(tableBuf, alerts))
	jsonBuf := new(bytes.Buffer)
	require.NoError(t, (&JSONFormatter{}).Format(jsonBuf, alerts))

	var decoded []types.Alert
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Len(t, decoded, len(alerts))
	for _, a := range alerts {
		assert.Contains(t, tableBuf.String(), a.Name)
	}
}
