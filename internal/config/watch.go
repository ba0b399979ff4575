package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gconsole/internal/system"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 120 * time.Millisecond

// Watch calls fn with freshly loaded settings whenever the file at path
// changes, until ctx is done. The parent directory is watched so that
// atomic renames are seen.
func Watch(ctx context.Context, path string, fn func(Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer w.Close()
		var timer *time.Timer
		fire := make(chan struct{}, 1)
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
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				s, err := Load(path)
				if err != nil {
					system.Logger.Warn("reload settings", "path", path, "err", err)
					continue
				}
				fn(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Debug("settings watcher", "err", err)
			}
		}
	}()
	return nil
}
