package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/config"
	"github.com/papapumpkin/ecliptic/internal/ephemeris"
	"github.com/papapumpkin/ecliptic/internal/profile"
	"github.com/papapumpkin/ecliptic/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "ecliptic",
	Short: "Gene Key calculator for the 64-fold zodiac wheel",
	Long: "Ecliptic resolves a birth date, time, and timezone to the Sun's apparent\n" +
		"ecliptic longitude and the Gene Key whose wheel segment contains it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .ecliptic.yaml)")
	rootCmd.PersistentFlags().String("model", "", "ephemeris model: meeus or almanac")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ecliptic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ECLIPTIC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Model = v
	}
	if v, _ := cmd.Flags().GetString("tz"); v != "" {
		cfg.Timezone = v
	}
	if v, _ := cmd.Flags().GetBool("json"); v {
		cfg.Output = config.OutputJSON
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// buildResolver constructs the calculation pipeline from config.
func buildResolver(cfg *config.Config) (*profile.Resolver, error) {
	c, err := codex.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load codex: %w", err)
	}
	model, err := ephemeris.New(cfg.Model)
	if err != nil {
		return nil, err
	}
	return profile.New(c, model), nil
}

// newEmitter opens the telemetry log when one is configured. A nil
// emitter is valid and discards all events.
func newEmitter(cfg *config.Config) (*telemetry.Emitter, error) {
	if cfg.TelemetryPath == "" {
		return nil, nil
	}
	return telemetry.NewEmitter(cfg.TelemetryPath)
}
