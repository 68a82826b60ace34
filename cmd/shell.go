package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/input"
	"github.com/pable/go-war-stats/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session: paste log lines, then run .report",
	Long: `Open an interactive session. Anything that is not a dot-command is added to the
current log buffer; .report prints the table for everything pasted so far.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	cGreeting.Println("warstats shell")
	cMuted.Println("paste log lines, then '.report'; '.help' for more")
	fmt.Println()
	return shellLoop(os.Stdin, os.Stdout, os.Stderr, true)
}

// shellLoop reads commands and log lines from in until EOF or .exit.
func shellLoop(in io.Reader, out, errOut io.Writer, prompt bool) error {
	var buf strings.Builder
	opts := tableOptions()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if prompt {
			cPrompt.Fprint(out, "warstats")
			cMuted.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			if prompt {
				fmt.Fprintln(out)
			}
			break
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if !strings.HasPrefix(trimmed, ".") && trimmed != "exit" && trimmed != "quit" {
			buf.WriteString(line)
			buf.WriteByte('\n')
			continue
		}

		tokens := strings.Fields(trimmed)
		cmd, args := strings.TrimPrefix(tokens[0], "."), tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp(out)
		case "report":
			shellReport(out, errOut, buf.String(), opts)
		case "clear":
			buf.Reset()
			cMuted.Fprintln(out, "log buffer cleared")
		case "columns":
			report.PrintColumns(out)
		case "player":
			if len(args) == 0 {
				opts.Focus = ""
				cMuted.Fprintln(out, "focus cleared")
				continue
			}
			opts.Focus = args[0]
		case "load":
			if len(args) == 0 || args[0] == "-" {
				cError.Fprintln(errOut, "usage: .load <log-file>")
				continue
			}
			text, err := input.Read(input.Source{Path: args[0]}, nil)
			if err != nil {
				cError.Fprintf(errOut, "error: %v\n", err)
				continue
			}
			buf.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				buf.WriteByte('\n')
			}
			cMuted.Fprintf(out, "loaded %s\n", args[0])
		default:
			cWarn.Fprintf(errOut, "unknown command %q, type '.help'\n", tokens[0])
		}
	}
	return scanner.Err()
}

func shellReport(out, errOut io.Writer, text string, opts report.Options) {
	rep, err := report.Run(text)
	if errors.Is(err, report.ErrEmptyInput) {
		cError.Fprintln(errOut, "Please paste your log first!")
		return
	}
	if err != nil {
		cError.Fprintf(errOut, "error: %v\n", err)
		return
	}
	report.PrintTableTo(out, rep, opts)
	report.PrintFooter(out, rep)
}

func shellHelp(out io.Writer) {
	fmt.Fprintln(out)
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"<any log line>", "add the line to the log buffer"},
		{".report", "print the stats table for the buffer"},
		{".load <log-file>", "append a file to the buffer"},
		{".player <name>", "mark a player's row (no name clears it)"},
		{".columns", "describe the table columns"},
		{".clear", "empty the log buffer"},
		{".help", "show this message"},
		{".exit / exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Fprint(out, "  ")
		cCmd.Fprintf(out, "%-24s", r.cmd)
		fmt.Fprintln(out, r.desc)
	}
	fmt.Fprintln(out)
}
