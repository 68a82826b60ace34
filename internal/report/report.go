package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-war-stats/internal/aggregator"
	"github.com/pable/go-war-stats/internal/model"
	"github.com/pable/go-war-stats/internal/parser"
)

// ErrEmptyInput is returned for empty or whitespace-only log text.
var ErrEmptyInput = errors.New("please paste your log first")

// Columns is the fixed header of the stats table, in DisplayRow field order.
var Columns = []model.Column{
	{Label: "Name", Tooltip: "Player's username"},
	{Label: "Troops Gained", Tooltip: "Total number of troops gained (from area bonus or card turn-ins)"},
	{Label: "Killed", Tooltip: "Total number of opponent's troops each player has killed"},
	{Label: "Lost", Tooltip: "Total number of troops each player has lost"},
	{Label: "KD", Tooltip: "Kill/Death ratio = Killed / Lost"},
	{Label: "Killed Attacking", Tooltip: "Total number of troops each player has killed while attacking"},
	{Label: "Lost Attacking", Tooltip: "Total number of troops each player has lost while attacking"},
	{Label: "Attack KD", Tooltip: "Attack KD = Killed Attacking / Lost Attacking"},
	{Label: "Killed Defending", Tooltip: "Total number of opponent's troops killed while defending"},
	{Label: "Lost Defending", Tooltip: "Total number of troops each player has lost while defending"},
	{Label: "Defense KD", Tooltip: "Defense KD = Killed Defending / Lost Defending"},
}

// Report is everything a renderer needs for one log.
type Report struct {
	Rows    []model.DisplayRow `json:"rows"`
	Columns []model.Column     `json:"columns"`
	Lines   model.LineCounts   `json:"lines"`
}

// CheckInput rejects text that has nothing to parse.
func CheckInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Run parses text and formats the result. Empty input is rejected before parsing.
func Run(text string) (*Report, error) {
	if err := CheckInput(text); err != nil {
		return nil, err
	}
	stats := parser.Parse(text)
	rows, err := aggregator.Rows(stats)
	if err != nil {
		return nil, fmt.Errorf("format rows: %w", err)
	}
	return &Report{Rows: rows, Columns: Columns, Lines: stats.Lines}, nil
}

// Options controls the terminal table.
type Options struct {
	Focus  string            // player whose row is marked with ">"
	Colors map[string]string // cell text -> color name
	Totals bool              // append an all-players row
}

// PrintTable prints the report table to stdout.
func PrintTable(rep *Report, opts Options) {
	PrintTableTo(os.Stdout, rep, opts)
}

// PrintTableTo writes the table to the provided writer.
// If opts.Focus is set, a marker column is prepended and that player's row gets ">".
func PrintTableTo(w io.Writer, rep *Report, opts Options) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignCenter},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off}, // keep labels as written
		},
	}))

	marked := opts.Focus != ""
	header := make([]any, 0, len(rep.Columns)+1)
	if marked {
		header = append(header, " ")
	}
	for _, c := range rep.Columns {
		header = append(header, c.Label)
	}
	table.Header(header...)

	palette := newPalette(opts.Colors)
	appendRow := func(r model.DisplayRow) {
		cells := make([]any, 0, len(header))
		if marked {
			marker := " "
			if r.Name == opts.Focus {
				marker = ">"
			}
			cells = append(cells, marker)
		}
		for _, v := range r.Values() {
			cells = append(cells, palette.paint(v))
		}
		table.Append(cells...)
	}

	for _, r := range rep.Rows {
		appendRow(r)
	}
	if opts.Totals && len(rep.Rows) > 0 {
		appendRow(aggregator.Totals(rep.Rows, "TOTAL"))
	}
	table.Render()
}

// PrintFooter writes a one-line summary of how the log lines were classified.
func PrintFooter(w io.Writer, rep *Report) {
	l := rep.Lines
	fmt.Fprintf(w, "\n(%d players | %d combat lines, %d troop lines, %d ignored",
		len(rep.Rows), l.Combat, l.TroopGain, l.Unrecognized)
	if l.BadTroopCount > 0 {
		fmt.Fprintf(w, ", %d unreadable troop counts", l.BadTroopCount)
	}
	fmt.Fprintln(w, ")")
}

// PrintColumns prints each column label with its description.
func PrintColumns(w io.Writer) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("COLUMN", "DESCRIPTION")
	for _, c := range Columns {
		table.Append(c.Label, c.Tooltip)
	}
	table.Render()
}
