package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings file whenever it is written or replaced and delivers the new
// settings on the returned channel. Only the latest unread settings are kept. The channel is
// closed when ctx is cancelled.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Settings, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	// editors often save by renaming over the file, so watch the directory
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	out := make(chan Settings, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s, err := Load(abs)
				if err != nil {
					logger.Warn("config reload failed, keeping previous settings", "path", abs, "err", err)
					continue
				}
				logger.Info("config reloaded", "path", abs)
				deliverLatest(out, s)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, nil
}

// deliverLatest replaces any pending value so a slow consumer only sees the newest settings
func deliverLatest(out chan Settings, s Settings) {
	for {
		select {
		case out <- s:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
