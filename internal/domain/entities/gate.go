package entities

import "sync"

// UploadGate tracks whether a document has been ingested and questions
// may be asked. Once ready it never reverts; a later upload only swaps
// the active filename.
type UploadGate struct {
	mu       sync.RWMutex
	ready    bool
	filename string
}

// NewUploadGate creates a gate in the not-ready state.
func NewUploadGate() *UploadGate {
	return &UploadGate{}
}

// IsReady reports whether a document is loaded.
func (g *UploadGate) IsReady() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ready
}

// MarkReady opens the gate for the given filename. Idempotent with
// respect to gating; calling it again only updates the filename.
func (g *UploadGate) MarkReady(filename string) {
	g.mu.Lock()
	g.ready = true
	g.filename = filename
	g.mu.Unlock()
}

// Filename returns the active document name, empty while not ready.
func (g *UploadGate) Filename() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.filename
}
