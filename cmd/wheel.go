package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/config"
	"github.com/papapumpkin/ecliptic/internal/ui"
	"github.com/papapumpkin/ecliptic/internal/wheel"
)

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Print all 64 wheel segments in zodiacal order",
	RunE:  runWheel,
}

var wheelKeyCmd = &cobra.Command{
	Use:   "key <number>",
	Short: "Show one Gene Key's segment, hexagram, and spectrum",
	Args:  cobra.ExactArgs(1),
	RunE:  runWheelKey,
}

func init() {
	wheelCmd.Flags().Bool("json", false, "write segments as JSON to stdout")
	wheelKeyCmd.Flags().Bool("json", false, "write the key as JSON to stdout")
	wheelCmd.AddCommand(wheelKeyCmd)
	rootCmd.AddCommand(wheelCmd)
}

func runWheel(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	c, err := codex.Load()
	if err != nil {
		return fmt.Errorf("failed to load codex: %w", err)
	}

	if cfg.Output == config.OutputJSON {
		return writeWheelJSON(os.Stdout, c)
	}
	ui.New().WheelTable(c)
	return nil
}

func runWheelKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	key, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("gene key must be a number, got %q", args[0])
	}

	seg, err := wheel.RangeForKey(key)
	if err != nil {
		return err
	}
	partner, err := wheel.PartnerKey(key)
	if err != nil {
		return err
	}

	c, err := codex.Load()
	if err != nil {
		return fmt.Errorf("failed to load codex: %w", err)
	}
	rec, err := c.Record(key)
	if err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		return writeKeyJSON(os.Stdout, seg, rec, partner)
	}
	ui.New().KeyDetail(seg, rec, partner)
	return nil
}
