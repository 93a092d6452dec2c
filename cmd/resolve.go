package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ecliptic/internal/civiltime"
	"github.com/papapumpkin/ecliptic/internal/config"
	"github.com/papapumpkin/ecliptic/internal/daylight"
	"github.com/papapumpkin/ecliptic/internal/profile"
	"github.com/papapumpkin/ecliptic/internal/telemetry"
	"github.com/papapumpkin/ecliptic/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a birth moment to its Gene Key",
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().String("date", "", "birth date (YYYY-MM-DD)")
	resolveCmd.Flags().String("time", "", "birth time of day (HH:MM, 24-hour)")
	resolveCmd.Flags().String("tz", "", "IANA timezone of the birth place")
	resolveCmd.Flags().Float64("lat", 0, "latitude of the birth place, degrees north")
	resolveCmd.Flags().Float64("lon", 0, "longitude of the birth place, degrees east")
	resolveCmd.Flags().String("city", "", "city name, carried through for display")
	resolveCmd.Flags().String("country", "", "country name, carried through for display")
	resolveCmd.Flags().Bool("json", false, "write the result as JSON to stdout")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New()

	date, _ := cmd.Flags().GetString("date")
	timeOfDay, _ := cmd.Flags().GetString("time")
	if date == "" || timeOfDay == "" {
		return fmt.Errorf("--date and --time are required")
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	city, _ := cmd.Flags().GetString("city")
	country, _ := cmd.Flags().GetString("country")
	loc := profile.Location{
		City:      city,
		Country:   country,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  cfg.Timezone,
	}

	resolver, err := buildResolver(&cfg)
	if err != nil {
		return err
	}
	emitter, err := newEmitter(&cfg)
	if err != nil {
		return err
	}
	defer emitter.Close()

	res, err := resolver.Resolve(date, timeOfDay, loc)
	if err != nil {
		return err
	}
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindResolve,
		Data:      map[string]any{"key": res.Key, "line": res.Line, "model": res.Model},
	})

	// Sun times only make sense with real coordinates.
	var report *daylight.Report
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		moment, err := civiltime.Parse(date, timeOfDay, cfg.Timezone)
		if err != nil {
			return err
		}
		rep, err := daylight.At(moment, lat, lon)
		if err != nil {
			printer.Error(err.Error())
		} else {
			report = &rep
		}
	}

	if cfg.Output == config.OutputJSON {
		return writeResultJSON(os.Stdout, res, report)
	}
	printer.Result(res)
	if report != nil {
		printer.Daylight(*report)
	}
	return nil
}
