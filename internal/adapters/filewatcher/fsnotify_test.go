package filewatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDropWatcher_Creation(t *testing.T) {
	watcher, err := NewDropWatcher([]string{".pdf"}, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()
}

func TestDropWatcher_DefaultExtensions(t *testing.T) {
	watcher, _ := NewDropWatcher(nil, nil)
	defer watcher.Stop()

	if len(watcher.extensions) != 1 || watcher.extensions[0] != ".pdf" {
		t.Errorf("expected .pdf default, got %v", watcher.extensions)
	}
}

func TestDropWatcher_EmitsCreateEvent(t *testing.T) {
	dir := t.TempDir()

	watcher, _ := NewDropWatcher(nil, nil)
	defer watcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events, err := watcher.Watch(ctx, dir)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "dropped.pdf"), []byte("%PDF-"), 0644)
	}()

	select {
	case event := <-events:
		if filepath.Base(event.Path) != "dropped.pdf" {
			t.Errorf("unexpected path: %s", event.Path)
		}
	case <-ctx.Done():
		t.Error("timeout waiting for event")
	}
}

func TestDropWatcher_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()

	watcher, _ := NewDropWatcher([]string{".pdf"}, nil)
	defer watcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	events, _ := watcher.Watch(ctx, dir)

	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644)

	select {
	case ev := <-events:
		t.Errorf("should not receive event for .txt, got %s", ev.Path)
	case <-time.After(300 * time.Millisecond):
		// Expected - no event
	}
}

func TestDropWatcher_Stop(t *testing.T) {
	watcher, _ := NewDropWatcher(nil, nil)
	if err := watcher.Stop(); err != nil {
		t.Errorf("stop failed: %v", err)
	}
}
