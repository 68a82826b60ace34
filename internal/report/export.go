package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Format is an output format for a Report.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want table, csv or json)", s)
	}
}

// Write renders rep in the given format. Only the table format uses opts.
func Write(w io.Writer, rep *Report, f Format, opts Options) error {
	switch f {
	case FormatTable:
		PrintTableTo(w, rep, opts)
		PrintFooter(w, rep)
		return nil
	case FormatCSV:
		return WriteCSV(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep, true)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteCSV writes a header line of column labels followed by one record per row.
func WriteCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(rep.Columns))
	for i, c := range rep.Columns {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range rep.Rows {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON encodes the whole report, infinite ratios as "Infinity".
func WriteJSON(w io.Writer, rep *Report, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
