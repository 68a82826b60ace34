package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/model"
	"github.com/pable/go-war-stats/internal/report"
)

var (
	exportOut     string
	exportFormat  string
	exportPlayers string
)

var exportCmd = &cobra.Command{
	Use:   "export [log-file|-]",
	Short: "Export the per-player stats as CSV or JSON",
	Long: `Parse a log and write the stats rows as CSV or JSON.

The format is taken from --format, or else from the --out extension (.csv/.json),
defaulting to JSON. Infinite KD values are written as "Infinity".

Example:
  warstats export game.log --out game.csv
  warstats export game.log --players "Alice,Bob" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "csv or json")
	exportCmd.Flags().StringVar(&exportPlayers, "players", "", "comma-separated player names to keep (default: all)")
	exportCmd.Flags().BoolVar(&reportClipboard, "clipboard", false, "read the log from the system clipboard")
}

func runExport(_ *cobra.Command, args []string) error {
	f, err := resolveExportFormat()
	if err != nil {
		return err
	}

	rep, err := loadReport(args)
	if err != nil {
		return err
	}
	rep.Rows = filterRows(rep.Rows, splitNames(exportPlayers))

	var buf bytes.Buffer
	switch f {
	case report.FormatCSV:
		err = report.WriteCSV(&buf, rep)
	default:
		err = report.WriteJSON(&buf, rep, true)
	}
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(exportOut, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d players)\n", exportOut, len(rep.Rows))
	return nil
}

// resolveExportFormat picks the format from --format, then the --out extension.
func resolveExportFormat() (report.Format, error) {
	name := exportFormat
	if name == "" {
		switch strings.ToLower(filepath.Ext(exportOut)) {
		case ".csv":
			name = string(report.FormatCSV)
		default:
			name = string(report.FormatJSON)
		}
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		return "", err
	}
	if f == report.FormatTable {
		return "", fmt.Errorf("export writes csv or json; use 'warstats report' for tables")
	}
	return f, nil
}

func splitNames(s string) []string {
	var names []string
	for _, raw := range strings.Split(s, ",") {
		if n := strings.TrimSpace(raw); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// filterRows keeps rows whose name is listed; an empty list keeps everything.
func filterRows(rows []model.DisplayRow, names []string) []model.DisplayRow {
	if len(names) == 0 {
		return rows
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	out := rows[:0:0]
	for _, r := range rows {
		if keep[r.Name] {
			out = append(out, r)
		}
	}
	return out
}
