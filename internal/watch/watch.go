package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Handler receives the full file contents after every change.
type Handler func(text string)

// Watcher re-reads a log file whenever it changes and hands the text to a Handler.
// Every run sees the whole file; nothing is carried over between runs.
type Watcher struct {
	path    string
	handler Handler
	poll    time.Duration
	limiter *rate.Limiter

	lastSize    int64
	lastModTime time.Time
}

// New creates a Watcher. poll is the backup polling interval in case file events
// are missed; minInterval bounds how often handler runs during bursts of writes.
func New(path string, handler Handler, poll, minInterval time.Duration) *Watcher {
	if poll <= 0 {
		poll = 2 * time.Second
	}
	return &Watcher{
		path:    filepath.Clean(path),
		handler: handler,
		poll:    poll,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Run renders once immediately, then on every change until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) (err error) {
	if err := w.render(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// Watch the directory: editors and games often replace the file rather than write to it.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	dirty := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				dirty = true
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("file watcher error")
		case <-ticker.C:
			// Backup polling in case file events are delayed or missed.
			if w.changedOnDisk() {
				dirty = true
			}
		}

		if dirty && w.limiter.Allow() {
			dirty = false
			if err := w.render(); err != nil {
				log.Warn().Err(err).Str("path", w.path).Msg("re-render failed")
			}
		}
	}
}

func (w *Watcher) changedOnDisk() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	return info.Size() != w.lastSize || !info.ModTime().Equal(w.lastModTime)
}

func (w *Watcher) render() error {
	info, err := os.Stat(w.path)
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	w.lastSize = info.Size()
	w.lastModTime = info.ModTime()

	log.Debug().Str("path", w.path).Int("bytes", len(data)).Msg("log changed, re-rendering")
	w.handler(string(data))
	return nil
}
