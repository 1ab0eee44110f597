package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// Watch reloads the store whenever the config file changes on disk and passes
// the new config to onChange. The parent directory is watched because editors
// often replace the file instead of writing to it. Watching stops when ctx is
// cancelled.
func (s *Store) Watch(ctx context.Context, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errWatchConfig.Wrap(err)
	}

	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return errWatchConfig.Wrap(err)
	}

	target := filepath.Clean(s.path)

	reload := func() {
		cfg, err := s.Reload()
		if err != nil {
			slog.Warn(
				"config reload failed, keeping previous settings",
				slog.Any("error", err),
			)

			return
		}

		if onChange != nil {
			onChange(cfg)
		}
	}

	go func() {
		defer w.Close()

		var timer *time.Timer

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}

				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Clean(ev.Name) != target ||
					ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if timer == nil {
					timer = time.AfterFunc(watchDebounce, reload)
				} else {
					timer.Reset(watchDebounce)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}

				slog.Warn("config watcher error", slog.Any("error", err))
			}
		}
	}()

	return nil
}
