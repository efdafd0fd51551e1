package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads a problem definition whenever its file changes.
type Watcher struct {
	logger  zerolog.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher creates a problem file watcher.
func NewWatcher(logger zerolog.Logger) *Watcher {
	return &Watcher{
		logger: logger.With().Str("component", "config-watcher").Logger(),
	}
}

// Watch watches the problem file and calls reloadFn with the freshly parsed
// problem after each change. Reloads are debounced; a file that fails to
// parse is logged and skipped, keeping the previous problem in effect.
// Watch returns immediately; watching stops when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string, reloadFn func(*Problem) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = watcher

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go w.processEvents(ctx, path, reloadFn)

	w.logger.Info().Str("path", path).Msg("Watching problem file")
	return nil
}

func (w *Watcher) processEvents(ctx context.Context, path string, reloadFn func(*Problem) error) {
	var reloadTimer *time.Timer
	reloadDelay := 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			_ = w.watcher.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			w.logger.Debug().
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("Problem file changed")

			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(reloadDelay, func() {
				if err := w.triggerReload(path, reloadFn); err != nil {
					w.logger.Error().Err(err).Msg("Failed to reload problem")
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) triggerReload(path string, reloadFn func(*Problem) error) error {
	w.logger.Info().Msg("Reloading problem...")

	p, err := Load(path)
	if err != nil {
		return fmt.Errorf("reloading problem: %w", err)
	}
	if err := reloadFn(p); err != nil {
		return fmt.Errorf("applying reloaded problem: %w", err)
	}

	w.logger.Info().
		Int("tasks", len(p.Tasks)).
		Msg("Problem reloaded successfully")
	return nil
}

// Stop stops watching for file changes.
func (w *Watcher) Stop() error {
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
