// Package config provides configuration loading for zapcli.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (ZAP_*) > config file (~/.zapcli.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the connection and daemon settings passed through to the
// ZAP API client. SoftFail is the process-wide override that suppresses
// alert-count exit codes; it is read once here and threaded explicitly
// into the exit-code policy.
type Config struct {
	ZapPath  string `mapstructure:"zap_path" yaml:"zap_path"`
	Port     int    `mapstructure:"port" yaml:"port"`
	ZapURL   string `mapstructure:"zap_url" yaml:"zap_url"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key"`
	LogPath  string `mapstructure:"log_path" yaml:"log_path"`
	SoftFail bool   `mapstructure:"soft_fail" yaml:"soft_fail"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		ZapPath: "/zap",
		Port:    8090,
		ZapURL:  "http://127.0.0.1",
	}
}

// Load reads configuration from ~/.zapcli.yaml and environment variables.
// It does not apply CLI flag overrides; call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".zapcli")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("zap-path") {
		val, _ := flags.GetString("zap-path")
		cfg.ZapPath = val
	}
	if flags.Changed("port") {
		val, _ := flags.GetInt("port")
		cfg.Port = val
	}
	if flags.Changed("zap-url") {
		val, _ := flags.GetString("zap-url")
		cfg.ZapURL = val
	}
	if flags.Changed("api-key") {
		val, _ := flags.GetString("api-key")
		cfg.APIKey = val
	}
	if flags.Changed("log-path") {
		val, _ := flags.GetString("log-path")
		cfg.LogPath = val
	}
	if flags.Changed("soft-fail") {
		val, _ := flags.GetBool("soft-fail")
		cfg.SoftFail = val
	}
}

// BaseURL returns the daemon API base URL including the port.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s:%d", c.ZapURL, c.Port)
}

// ConfigFilePath returns the default config file path (~/.zapcli.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zapcli.yaml"
	}
	return filepath.Join(home, ".zapcli.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("zap_path", "/zap")
	v.SetDefault("port", 8090)
	v.SetDefault("zap_url", "http://127.0.0.1")
}

// bindEnv maps the environment variables honored by zap-cli deployments.
// SOFT_FAIL deliberately carries no ZAP_ prefix.
func bindEnv(v *viper.Viper) {
	v.BindEnv("zap_path", "ZAP_PATH")
	v.BindEnv("port", "ZAP_PORT")
	v.BindEnv("zap_url", "ZAP_URL")
	v.BindEnv("api_key", "ZAP_API_KEY")
	v.BindEnv("log_path", "ZAP_LOG_PATH")
	v.BindEnv("soft_fail", "SOFT_FAIL")
}
