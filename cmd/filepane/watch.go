package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// defaultRefreshInterval bounds how often a busy directory is re-read.
const defaultRefreshInterval = 250 * time.Millisecond

// dirWatcher follows the directory on display and asks for a refresh
// when it changes. Bursts of notifications are coalesced by a rate
// limiter so a large copy does not flood the mailbox.
type dirWatcher struct {
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	refresh func(dir string) error
	log     *slog.Logger

	mu  sync.Mutex
	dir string
}

func newDirWatcher(interval time.Duration, refresh func(dir string) error, log *slog.Logger) (*dirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &dirWatcher{
		watcher: w,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		refresh: refresh,
		log:     log.With(slog.String("component", "watcher")),
	}, nil
}

// Watch switches the watch to dir.
func (w *dirWatcher) Watch(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return
	}
	if w.dir != "" {
		_ = w.watcher.Remove(w.dir)
	}
	w.dir = dir
	if err := w.watcher.Add(dir); err != nil {
		w.log.Warn("watch directory", slog.String("dir", dir), slog.Any("error", err))
	}
}

func (w *dirWatcher) current() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Run delivers refreshes until ctx is done, then closes the watcher.
func (w *dirWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.drain()
			dir := w.current()
			w.log.Debug("directory changed", slog.String("dir", dir), slog.String("op", ev.Op.String()))
			if err := w.refresh(dir); err != nil {
				return err
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", slog.Any("error", err))
		}
	}
}

// drain discards notifications that arrived while waiting; the refresh
// that follows covers them.
func (w *dirWatcher) drain() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
