// Package watch reports changes to a stylesheet file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
)

// DefaultDelay is the quiet period after the last event before a change is
// reported.
const DefaultDelay = 100 * time.Millisecond

// Watcher signals on Changes whenever the watched file is written, created,
// renamed or removed. Bursts of events are coalesced.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	delay   time.Duration
	log     *logger.Logger
	changes chan struct{}
}

// New starts watching path. The parent directory is watched so that editors
// replacing the file are noticed too.
func New(path string, delay time.Duration, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Watcher{
		fs:      fsw,
		path:    abs,
		delay:   delay,
		log:     log.With("path", abs),
		changes: make(chan struct{}, 1),
	}, nil
}

// Changes delivers one value per coalesced burst of events. A pending
// value is not duplicated if the reader lags behind.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	debounce := time.NewTimer(w.delay)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	pending := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			pending++
			debounce.Reset(w.delay)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watcher error")

		case <-debounce.C:
			if pending == 0 {
				continue
			}
			w.log.Debug("stylesheet changed", "events", pending)
			pending = 0
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// Close stops the watcher and makes Run return.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
