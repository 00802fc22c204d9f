// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Origin identifies who authored a message.
type Origin string

const (
	// OriginUser marks messages typed by the user.
	OriginUser Origin = "user"
	// OriginAssistant marks answers and notices from the assistant side.
	// System notices share this origin; there is no third origin.
	OriginAssistant Origin = "assistant"
)

// Message is a single conversation entry. Immutable once created.
type Message struct {
	ID        string
	Text      string
	Origin    Origin
	Timestamp string // local wall-clock time captured at creation, never re-derived
}

// NewMessage creates a message with a fresh ID, stamped with the current local time.
func NewMessage(origin Origin, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Origin:    origin,
		Timestamp: time.Now().Format("3:04 PM"),
	}
}
