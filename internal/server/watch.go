package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meltui/melt/pkg/reactive"
)

// themeWatcher calls onChange after the theme file is written, created or
// renamed into place. It watches the directory so editors that replace the
// file are caught too.
type themeWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

func newThemeWatcher(path string, debounce time.Duration, onChange func(), logger *slog.Logger) (*themeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("server: theme path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("server: theme watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("server: watch %s: %w", filepath.Dir(abs), err)
	}
	return &themeWatcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		watcher:  w,
	}, nil
}

// Run delivers changes until ctx is done or the watcher is closed.
// onChange runs on this goroutine, so its tracking state is released on exit.
func (w *themeWatcher) Run(ctx context.Context) {
	defer reactive.ReleaseGoroutine()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher", "error", err)
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

func (w *themeWatcher) Close() error {
	return w.watcher.Close()
}
