package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// New creates a Watcher over inboxDir. Files are handed to the handler one
// at a time; the full digest pipeline runs per video, so processing stays
// strictly sequential.
func New(inboxDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}
