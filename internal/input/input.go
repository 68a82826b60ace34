package input

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Source says where log text comes from. With no path and no clipboard, stdin is read.
type Source struct {
	Path      string // file path; "-" means stdin
	Clipboard bool   // read the system clipboard instead
}

// String describes the source for log messages.
func (s Source) String() string {
	switch {
	case s.Clipboard:
		return "clipboard"
	case s.Path == "" || s.Path == "-":
		return "stdin"
	default:
		return s.Path
	}
}

// readClipboard is swapped in tests; the real clipboard needs a display server.
var readClipboard = clipboard.ReadAll

// Read returns the full log text from src. stdin is used for "-" or an empty path.
func Read(src Source, stdin io.Reader) (string, error) {
	if src.Clipboard {
		if src.Path != "" {
			return "", fmt.Errorf("choose either a file or --clipboard, not both")
		}
		text, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}

	if src.Path == "" || src.Path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(data), nil
}
