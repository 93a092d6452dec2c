package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the zodiac wheel in a full-screen terminal UI",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := codex.Load()
	if err != nil {
		return fmt.Errorf("failed to load codex: %w", err)
	}
	return tui.Run(c)
}
