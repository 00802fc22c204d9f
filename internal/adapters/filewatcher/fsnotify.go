// Package filewatcher provides file system monitoring adapters.
// Adapter implementing ports.FileWatcher.
package filewatcher

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/infogenie/infogenie-go/internal/domain/ports"
)

// DropWatcher emits an event for each document created in the watched
// directory. Only Create events are reported; rewrites of an existing
// file do not retrigger an upload.
type DropWatcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	logger     *zap.Logger
}

// NewDropWatcher creates a watcher for the given extensions,
// defaulting to PDF documents.
func NewDropWatcher(extensions []string, logger *zap.Logger) (*DropWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = []string{".pdf"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DropWatcher{
		watcher:    w,
		extensions: extensions,
		logger:     logger,
	}, nil
}

// Watch starts monitoring the directory and emits events until ctx ends.
func (w *DropWatcher) Watch(ctx context.Context, dir string) (<-chan ports.FileEvent, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan ports.FileEvent, 16)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) || !w.watched(event.Name) {
					continue
				}
				select {
				case events <- ports.FileEvent{Path: event.Name}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("file watcher error", zap.Error(err))
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *DropWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *DropWatcher) watched(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
