package output

import (
	"bytes"
	"testing"

	"github.com/buemura/zapcli/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestWriteScriptTable(t *testing.T) {
	buf := new(bytes.Buffer)
	WriteScriptTable(buf, []types.Script{
		{Name: "auth-hook.js", Type: "httpsender", Engine: "Oracle Nashorn", Enabled: "true"},
		{Name: "slow-down.js", Type: "proxy", Engine: "Oracle Nashorn", Enabled: "false"},
	})

	out := buf.String()
	assert.Contains(t, out, "auth-hook.js")
	assert.Contains(t, out, "httpsender")
	assert.Contains(t, out, "false")
}

func TestWriteScriptTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	WriteScriptTable(buf, nil)
	assert.Equal(t, "No scripts.\n", buf.String())
}
