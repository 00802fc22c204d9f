package entities

import "testing"

func TestNewMessage_Fields(t *testing.T) {
	msg := NewMessage(OriginUser, "hello")

	if msg.ID == "" {
		t.Error("expected non-empty ID")
	}
	if msg.Text != "hello" {
		t.Errorf("unexpected text: %s", msg.Text)
	}
	if msg.Origin != OriginUser {
		t.Errorf("unexpected origin: %s", msg.Origin)
	}
	if msg.Timestamp == "" {
		t.Error("expected timestamp captured at creation")
	}
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewMessage(OriginAssistant, "x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID: %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestUploadGate_InitiallyNotReady(t *testing.T) {
	gate := NewUploadGate()

	if gate.IsReady() {
		t.Error("new gate should not be ready")
	}
	if gate.Filename() != "" {
		t.Error("new gate should have no filename")
	}
}

func TestUploadGate_MarkReady(t *testing.T) {
	gate := NewUploadGate()
	gate.MarkReady("report.pdf")

	if !gate.IsReady() {
		t.Error("gate should be ready after MarkReady")
	}
	if gate.Filename() != "report.pdf" {
		t.Errorf("unexpected filename: %s", gate.Filename())
	}
}

func TestUploadGate_ReuploadReplacesFilename(t *testing.T) {
	gate := NewUploadGate()
	gate.MarkReady("first.pdf")
	gate.MarkReady("second.pdf")

	if !gate.IsReady() {
		t.Error("gate should stay ready")
	}
	if gate.Filename() != "second.pdf" {
		t.Errorf("expected second.pdf, got %s", gate.Filename())
	}
}

func TestDocument_IsPDF(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		want      bool
	}{
		{"pdf", "application/pdf", true},
		{"plain text", "text/plain", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := Document{Name: "f", MediaType: tc.mediaType}
			if doc.IsPDF() != tc.want {
				t.Errorf("IsPDF() = %v, want %v", doc.IsPDF(), tc.want)
			}
		})
	}
}
