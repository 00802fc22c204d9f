package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLocalLoader_LoadPDF(t *testing.T) {
	path := writeTemp(t, "report.pdf", []byte("%PDF-1.4 fake content"))

	l := NewLocalLoader()
	doc, err := l.Load(context.Background(), path)

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if doc.Name != "report.pdf" {
		t.Errorf("unexpected name: %s", doc.Name)
	}
	if doc.MediaType != entities.MediaTypePDF {
		t.Errorf("expected application/pdf, got %s", doc.MediaType)
	}
	if !doc.IsPDF() {
		t.Error("document should report as PDF")
	}
	if string(doc.Content) != "%PDF-1.4 fake content" {
		t.Errorf("content mismatch: %q", doc.Content)
	}
}

func TestLocalLoader_NonPDFExtension(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("plain notes"))

	l := NewLocalLoader()
	doc, err := l.Load(context.Background(), path)

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if doc.IsPDF() {
		t.Errorf("txt file must not report as PDF, got %s", doc.MediaType)
	}
}

func TestLocalLoader_UppercaseExtension(t *testing.T) {
	path := writeTemp(t, "REPORT.PDF", []byte("%PDF-1.4"))

	l := NewLocalLoader()
	doc, err := l.Load(context.Background(), path)

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if doc.MediaType != entities.MediaTypePDF {
		t.Errorf("extension match should be case-insensitive, got %s", doc.MediaType)
	}
}

func TestLocalLoader_SniffsExtensionlessPDF(t *testing.T) {
	path := writeTemp(t, "document", []byte("%PDF-1.7 body"))

	l := NewLocalLoader()
	doc, err := l.Load(context.Background(), path)

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if doc.MediaType != entities.MediaTypePDF {
		t.Errorf("content sniffing should identify the PDF, got %s", doc.MediaType)
	}
}

func TestLocalLoader_MissingFile(t *testing.T) {
	l := NewLocalLoader()
	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))

	if err == nil {
		t.Error("expected error for missing file")
	}
}
