package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_RendersOnStartAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	if err := os.WriteFile(path, []byte("Bob received 1 troop\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	texts := make(chan string, 16)
	w := New(path, func(text string) {
		select {
		case texts <- text:
		default:
		}
	}, 50*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case got := <-texts:
		if got != "Bob received 1 troop\n" {
			t.Errorf("initial render = %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no initial render")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("Bob received 2 troops\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	want := "Bob received 1 troop\nBob received 2 troops\n"
	deadline := time.After(5 * time.Second)
	for found := false; !found; {
		select {
		case got := <-texts:
			found = got == want
		case <-deadline:
			t.Fatal("no render after change")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing.log"), func(string) {}, 0, time.Millisecond)
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
