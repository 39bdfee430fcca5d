package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implWatcher struct {
	inboxDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start monitors the inbox for new video files and digests them one by one.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for new videos: %s", w.inboxDir)
	w.logger.Info(ctx, "Supported formats: .mp4, .mov, .avi, .mkv, .webm, .m4v, .flv")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isVideoFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-video file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New video detected: %s", event.Name)

			// Small delay to ensure the file is fully written
			time.Sleep(500 * time.Millisecond)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv":
		return true
	}
	return false
}
