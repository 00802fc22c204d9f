// Package loader provides document loading adapters.
// Adapter implementing ports.DocumentLoader.
package loader

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
)

// LocalLoader reads documents from the local filesystem. The media type
// is derived from the extension, like a browser file input, with content
// sniffing as a fallback for extensionless files.
type LocalLoader struct{}

// NewLocalLoader creates a local filesystem loader.
func NewLocalLoader() *LocalLoader {
	return &LocalLoader{}
}

// Load reads the file at path into a Document staged for upload.
func (l *LocalLoader) Load(ctx context.Context, path string) (*entities.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return &entities.Document{
		Name:      filepath.Base(path),
		Path:      path,
		MediaType: detectMediaType(path, data),
		Content:   data,
	}, nil
}

// detectMediaType resolves the media type by extension first, then by
// content. The result is stripped of parameters so comparisons against
// bare types like application/pdf work.
func detectMediaType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return stripParams(t)
	}
	return stripParams(http.DetectContentType(data))
}

func stripParams(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.TrimSpace(mediaType)
}
