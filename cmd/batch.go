package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ecliptic/internal/batch"
	"github.com/papapumpkin/ecliptic/internal/config"
	"github.com/papapumpkin/ecliptic/internal/telemetry"
	"github.com/papapumpkin/ecliptic/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve a JSONL file of birth rows",
	Long: "Batch reads one request per line ({\"date\",\"time\",\"location\"}) and\n" +
		"writes one result row per request. Bad rows become error rows; the run\n" +
		"never aborts. With --watch the argument is a drop directory instead,\n" +
		"and every *.jsonl file that appears is resolved as it settles.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("watch", false, "treat the argument as a drop directory and watch it")
	batchCmd.Flags().String("out", "", "write result rows to this file instead of stdout")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New()

	resolver, err := buildResolver(&cfg)
	if err != nil {
		return err
	}
	emitter, err := newEmitter(&cfg)
	if err != nil {
		return err
	}
	defer emitter.Close()
	runner := batch.NewRunner(resolver, emitter)

	out := io.Writer(os.Stdout)
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		ctx, cancel := setupSignalContext(printer)
		defer cancel()
		return runWatch(ctx, runner, emitter, printer, args[0], out)
	}

	summary, err := runner.RunFile(args[0], out)
	if err != nil {
		return err
	}
	printer.BatchSummary(summary.Rows, summary.OK, summary.Failed)
	return nil
}

// runWatch resolves batch files as they land in the drop directory,
// until the context is canceled.
func runWatch(ctx context.Context, runner *batch.Runner, emitter *telemetry.Emitter, printer *ui.Printer, dir string, out io.Writer) error {
	w, err := batch.NewWatcher(dir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	printer.WatchStarted(dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Files:
			if !ok {
				return nil
			}
			printer.FileDetected(path)
			_ = emitter.Emit(telemetry.Event{Timestamp: time.Now().UTC(), Kind: telemetry.KindWatchFile, Source: path})
			summary, err := runner.RunFile(path, out)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			printer.BatchSummary(summary.Rows, summary.OK, summary.Failed)
		}
	}
}

// setupSignalContext returns a context that is canceled on SIGINT or SIGTERM.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		cancel()
	}()
	return ctx, cancel
}
