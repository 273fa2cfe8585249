package zap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScriptFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.js")
	require.NoError(t, os.WriteFile(path, []byte("// hook"), 0644))
	return path
}

func TestListScripts(t *testing.T) {
	daemon := newFakeDaemon()
	daemon.responses["/JSON/script/view/listScripts/"] = `{"listScripts": [
		{"name": "auth-hook.js", "type": "httpsender", "engine": "Oracle Nashorn", "enabled": "true"},
		{"name": "slow-down.js", "type": "proxy", "engine": "Oracle Nashorn", "enabled": "false"}
	]}`
	client := newTestClient(t, daemon, "")

	scripts, err := client.ListScripts(context.Background())
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, "auth-hook.js", scripts[0].Name)
	assert.Equal(t, "false", scripts[1].Enabled)
}

func TestLoadScript_MissingFile(t *testing.T) {
	daemon := newFakeDaemon()
	client := newTestClient(t, daemon, "")

	err := client.LoadScript(context.Background(), "hook", "proxy", "ECMAScript",
		filepath.Join(t.TempDir(), "nope.js"), "")
	require.Error(t, err)
	assert.Empty(t, daemon.paths, "no remote call should be made for a missing file")
}

func TestLoadScript_UnknownEngine(t *testing.T) {
	daemon := newFakeDaemon()
	daemon.responses["/JSON/script/view/listEngines/"] = `{"listEngines": ["Oracle Nashorn : ECMAScript"]}`
	client := newTestClient(t, daemon, "")

	err := client.LoadScript(context.Background(), "hook", "proxy", "Lua", writeScriptFile(t), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown script engine "Lua"`)
	assert.Zero(t, daemon.served("/JSON/script/action/load/"))
}

func TestLoadScript_EngineShortName(t *testing.T) {
	daemon := newFakeDaemon()
	daemon.responses["/JSON/script/view/listEngines/"] = `{"listEngines": ["Oracle Nashorn : ECMAScript"]}`
	client := newTestClient(t, daemon, "")

	path := writeScriptFile(t)
	require.NoError(t, client.LoadScript(context.Background(), "hook", "httpsender", "ECMAScript", path, "auth hook"))

	require.Equal(t, 1, daemon.served("/JSON/script/action/load/"))
	// second call is the load action, after the engine view
	q := daemon.queries[1]
	assert.Equal(t, "hook", q.Get("scriptName"))
	assert.Equal(t, "httpsender", q.Get("scriptType"))
	assert.Equal(t, "ECMAScript", q.Get("scriptEngine"))
	assert.Equal(t, path, q.Get("fileName"))
	assert.Equal(t, "auth hook", q.Get("scriptDescription"))
}

func TestEnableScript(t *testing.T) {
	daemon := newFakeDaemon()
	client := newTestClient(t, daemon, "")

	require.NoError(t, client.EnableScript(context.Background(), "auth-hook.js"))
	assert.Equal(t, 1, daemon.served("/JSON/script/action/enable/"))
	assert.Equal(t, "auth-hook.js", daemon.queries[0].Get("scriptName"))
}

func TestRemoveScript(t *testing.T) {
	daemon := newFakeDaemon()
	client := newTestClient(t, daemon, "")

	require.NoError(t, client.RemoveScript(context.Background(), "auth-hook.js"))
	assert.Equal(t, 1, daemon.served("/JSON/script/action/remove/"))
}
