package settings

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"karolbroda.com/lyroverlay/internal/logger"
)

// Watch follows the settings file for writes made by another process and
// broadcasts them like local changes. The directory is watched rather than
// the file because the atomic rename replaces the inode. Blocks until ctx
// is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			err := s.reload()
			if err != nil && !errors.Is(err, ErrNoSettingsFile) {
				logger.Warn("ignoring unreadable settings change",
					logger.String("path", s.path), logger.ErrorField(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher error", logger.ErrorField(err))
		}
	}
}
