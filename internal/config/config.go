package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Output modes for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all runtime configuration for an ecliptic invocation.
// Values are populated from .ecliptic.yaml, ECLIPTIC_* env vars, and
// CLI flags.
type Config struct {
	Model         string `mapstructure:"model"`
	Timezone      string `mapstructure:"timezone"`
	Output        string `mapstructure:"output"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags. The model
// name is passed through as-is; the ephemeris layer rejects unknown
// models when one is constructed.
func Load() (Config, error) {
	viper.SetDefault("model", "meeus")
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("output", OutputText)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return Config{}, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output)
	}
	if cfg.Timezone == "" {
		return Config{}, fmt.Errorf("timezone must not be empty")
	}
	return cfg, nil
}
