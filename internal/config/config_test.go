package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "/zap", cfg.ZapPath)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "http://127.0.0.1", cfg.ZapURL)
	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "", cfg.LogPath)
	assert.False(t, cfg.SoftFail)
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Ensure no env vars interfere.
	for _, key := range []string{"ZAP_PATH", "ZAP_PORT", "ZAP_URL", "ZAP_API_KEY", "ZAP_LOG_PATH", "SOFT_FAIL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/zap", cfg.ZapPath)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "http://127.0.0.1", cfg.ZapURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZAP_PORT", "9090")
	t.Setenv("ZAP_API_KEY", "secret")
	t.Setenv("SOFT_FAIL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.True(t, cfg.SoftFail)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".zapcli.yaml")

	content := `zap_path: "/opt/zaproxy"
port: 8080
zap_url: "http://zap.internal"
api_key: "abc123"
log_path: "/var/log/zap"
soft_fail: true
`
	err := os.WriteFile(cfgFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, "/opt/zaproxy", cfg.ZapPath)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://zap.internal", cfg.ZapURL)
	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "/var/log/zap", cfg.LogPath)
	assert.True(t, cfg.SoftFail)
}

func TestApplyFlags(t *testing.T) {
	cfg := Defaults()

	cmd := &cobra.Command{}
	cmd.Flags().String("zap-path", "", "")
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().String("zap-url", "", "")
	cmd.Flags().String("api-key", "", "")
	cmd.Flags().String("log-path", "", "")
	cmd.Flags().Bool("soft-fail", false, "")

	require.NoError(t, cmd.Flags().Set("port", "7070"))
	require.NoError(t, cmd.Flags().Set("api-key", "flagged"))

	ApplyFlags(&cfg, cmd)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "flagged", cfg.APIKey)
	// Untouched flags keep their config values.
	assert.Equal(t, "/zap", cfg.ZapPath)
	assert.Equal(t, "http://127.0.0.1", cfg.ZapURL)
}

func TestBaseURL(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "http://127.0.0.1:8090", cfg.BaseURL())
}
