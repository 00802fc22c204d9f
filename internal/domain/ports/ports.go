// Package ports defines interfaces for external dependencies.
// Usecases depend on these abstractions, not concrete implementations;
// adapters implement them.
package ports

import (
	"context"
	"io"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
)

// UploadResult is the backend's acknowledgement of an ingested document.
// Filename is taken from the submitted file name, not the response body.
type UploadResult struct {
	Filename string
	Message  string
}

// DocumentQA is the remote document question-answering service.
type DocumentQA interface {
	// Upload ingests a document on the backend. A non-success response
	// is returned as *UploadError; transport failures come back as
	// ordinary wrapped errors.
	Upload(ctx context.Context, filename string, content io.Reader) (*UploadResult, error)

	// Ask submits a question about the uploaded document and returns the
	// answer text, which may be empty when the backend has none. A
	// non-success response is returned as *AskError.
	Ask(ctx context.Context, query string) (string, error)
}

// DocumentLoader reads a local file into a Document ready for upload.
type DocumentLoader interface {
	Load(ctx context.Context, path string) (*entities.Document, error)
}

// FileWatcher monitors a directory for newly dropped documents.
type FileWatcher interface {
	// Watch starts monitoring the directory and emits an event per new file.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent reports a file that appeared in the watched directory.
type FileEvent struct {
	Path string
}
