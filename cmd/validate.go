package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ecliptic/internal/civiltime"
	"github.com/papapumpkin/ecliptic/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <date> <time>",
	Short: "Check a civil date and time of day without resolving it",
	Long: "Validate checks calendar correctness (leap days, days per month,\n" +
		"hour and minute ranges). With --tz it also resolves the moment to UTC,\n" +
		"applying the DST gap and repeat policies, and prints the instant.",
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("tz", "", "also resolve the moment in this IANA timezone")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	date, timeOfDay := args[0], args[1]

	zone, _ := cmd.Flags().GetString("tz")
	if zone == "" {
		err := civiltime.Validate(date, timeOfDay)
		printer.ValidateResult(date, timeOfDay, err)
		if err != nil {
			os.Exit(1)
		}
		return nil
	}

	instant, err := civiltime.ToUTC(date, timeOfDay, zone)
	printer.ValidateResult(date, timeOfDay, err)
	if err != nil {
		os.Exit(1)
	}
	printer.Info("resolves to " + instant.Format(time.RFC3339) + " in " + zone)
	return nil
}
