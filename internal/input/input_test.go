package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_Stdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		got, err := Read(Source{Path: path}, strings.NewReader("Bob received 3 troops\n"))
		if err != nil {
			t.Fatalf("Read(%q): %v", path, err)
		}
		if got != "Bob received 3 troops\n" {
			t.Errorf("Read(%q) = %q", path, got)
		}
	}
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	if err := os.WriteFile(path, []byte("line one\r\nline two"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(Source{Path: path}, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "line one\r\nline two" {
		t.Errorf("Read = %q", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(Source{Path: filepath.Join(t.TempDir(), "missing.log")}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestRead_Clipboard(t *testing.T) {
	saved := readClipboard
	defer func() { readClipboard = saved }()

	readClipboard = func() (string, error) { return "from clipboard", nil }
	got, err := Read(Source{Clipboard: true}, nil)
	if err != nil || got != "from clipboard" {
		t.Errorf("Read = %q, %v", got, err)
	}

	readClipboard = func() (string, error) { return "", errors.New("no display") }
	if _, err := Read(Source{Clipboard: true}, nil); err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("expected wrapped clipboard error, got %v", err)
	}
}

func TestRead_FileAndClipboard(t *testing.T) {
	if _, err := Read(Source{Path: "game.log", Clipboard: true}, nil); err == nil {
		t.Error("expected error when both a file and the clipboard are given")
	}
}

func TestSourceString(t *testing.T) {
	cases := map[Source]string{
		{}:                "stdin",
		{Path: "-"}:       "stdin",
		{Path: "a.log"}:   "a.log",
		{Clipboard: true}: "clipboard",
	}
	for src, want := range cases {
		if got := src.String(); got != want {
			t.Errorf("%+v.String() = %q, want %q", src, got, want)
		}
	}
}
