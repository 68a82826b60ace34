package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/report"
	"github.com/pable/go-war-stats/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <log-file>",
	Short: "Reprint the stats table every time a log file changes",
	Long: `Watch a log file and rebuild the whole report whenever it is written.
Each refresh parses the complete file from scratch. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addTableFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	poll, err := cfg.Watch.PollDuration()
	if err != nil {
		return err
	}
	minInterval, err := cfg.Watch.MinDuration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := tableOptions()
	w := watch.New(path, func(text string) {
		cHeader.Fprintf(os.Stdout, "\n--- %s  %s ---\n\n", path, time.Now().Format("15:04:05"))
		rep, err := report.Run(text)
		if errors.Is(err, report.ErrEmptyInput) {
			cMuted.Println("log is empty, waiting for lines...")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("build report")
			return
		}
		report.PrintTableTo(os.Stdout, rep, opts)
		report.PrintFooter(os.Stdout, rep)
	}, poll, minInterval)

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", path)
	return w.Run(ctx)
}
