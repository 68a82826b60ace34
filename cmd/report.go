package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/input"
	"github.com/pable/go-war-stats/internal/report"
)

var (
	reportFormat    string
	reportPlayer    string
	reportColors    map[string]string
	reportTotals    bool
	reportClipboard bool
)

var reportCmd = &cobra.Command{
	Use:   "report [log-file|-]",
	Short: "Print the per-player stats table for a log",
	Long: `Read a game log from a file, stdin ("-" or no argument) or the clipboard and
print one row per player, sorted by name.

Recognised lines:
  <...(Attacker)> attacked <...(Defender)> killing K losing L
  <Name> received N troops

Everything else is ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	addTableFlags(reportCmd)
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "output format: table, csv or json (default from config)")
	reportCmd.Flags().BoolVar(&reportClipboard, "clipboard", false, "read the log from the system clipboard")
}

// addTableFlags registers the flags shared by every command that prints the table.
func addTableFlags(c *cobra.Command) {
	c.Flags().StringVar(&reportPlayer, "player", "", "mark this player's row with \">\"")
	c.Flags().StringToStringVar(&reportColors, "color", nil, "color cells by value, e.g. --color Alice=red,Bob=cyan")
	c.Flags().BoolVar(&reportTotals, "totals", false, "append a TOTAL row")
}

func runReport(cmd *cobra.Command, args []string) error {
	format := cfg.Report.Format
	if reportFormat != "" {
		format = reportFormat
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	rep, err := loadReport(args)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, rep, f, tableOptions())
}

// loadReport reads the log named by args (or stdin/clipboard) and runs the pipeline.
func loadReport(args []string) (*report.Report, error) {
	src := input.Source{Clipboard: reportClipboard}
	if len(args) > 0 {
		src.Path = args[0]
	}
	text, err := input.Read(src, os.Stdin)
	if err != nil {
		return nil, err
	}
	rep, err := report.Run(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	log.Info().Str("source", src.String()).Int("players", len(rep.Rows)).Msg("report built")
	return rep, nil
}

// tableOptions merges config defaults with command-line flags; flags win.
func tableOptions() report.Options {
	opts := report.Options{
		Focus:  cfg.Report.Focus,
		Totals: cfg.Report.Totals || reportTotals,
		Colors: make(map[string]string, len(cfg.Colors)+len(reportColors)),
	}
	if reportPlayer != "" {
		opts.Focus = reportPlayer
	}
	for k, v := range cfg.Colors {
		opts.Colors[k] = v
	}
	for k, v := range reportColors {
		opts.Colors[k] = v
	}
	return opts
}
