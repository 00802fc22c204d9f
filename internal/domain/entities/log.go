package entities

import "sync"

// MessageLog is the ordered, append-only conversation transcript.
// The only non-append mutation is Replace, which removes a placeholder
// and appends its resolution as one atomic step, and Reset, which seeds
// a fresh transcript after a successful upload.
type MessageLog struct {
	mu       sync.Mutex
	messages []Message
	observer func()
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// OnChange registers a function invoked once after every public mutation.
// Observers never see the intermediate state between a placeholder's
// removal and its replacement's append.
func (l *MessageLog) OnChange(fn func()) {
	l.mu.Lock()
	l.observer = fn
	l.mu.Unlock()
}

// Append adds a message at the end. Never fails.
func (l *MessageLog) Append(msg Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	fn := l.observer
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Replace removes the entry with the given placeholder ID, if still present,
// and appends msg at the current tail. Removal of an already-gone placeholder
// is a no-op, so double resolution cannot corrupt the log; the append still
// happens. Both steps occur under one lock so no reader observes the log
// without either the placeholder or its replacement.
func (l *MessageLog) Replace(placeholderID string, msg Message) {
	l.mu.Lock()
	for i, m := range l.messages {
		if m.ID == placeholderID {
			l.messages = append(l.messages[:i], l.messages[i+1:]...)
			break
		}
	}
	l.messages = append(l.messages, msg)
	fn := l.observer
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Reset discards the transcript and replaces it with the given messages.
// Used only when an upload succeeds and a welcome message is seeded.
func (l *MessageLog) Reset(msgs []Message) {
	l.mu.Lock()
	l.messages = append([]Message(nil), msgs...)
	fn := l.observer
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Messages returns a snapshot copy in insertion order.
func (l *MessageLog) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the current number of entries.
func (l *MessageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
