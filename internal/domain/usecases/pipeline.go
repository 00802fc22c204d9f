// Package usecases contains application business rules.
// Usecases orchestrate entities and depend on port interfaces only -
// no framework code, no transport details.
package usecases

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
	"github.com/infogenie/infogenie-go/internal/domain/ports"
)

const (
	placeholderText = "Thinking..."

	noAnswerFallback     = "I couldn't find an answer to that question."
	connectivityFallback = "Sorry, I couldn't process your question. Please make sure the backend is running."
	uploadRetryDetail    = "Failed to upload PDF. Please try again."
)

// RequestPipeline performs the two network operations and maps their
// outcomes to message log mutations. One busy flag per request kind;
// concurrent asks are rejected upstream, never queued.
type RequestPipeline struct {
	backend ports.DocumentQA
	log     *entities.MessageLog

	asking    atomic.Bool
	uploading atomic.Bool
}

// NewRequestPipeline creates a pipeline with injected dependencies.
func NewRequestPipeline(backend ports.DocumentQA, log *entities.MessageLog) *RequestPipeline {
	return &RequestPipeline{backend: backend, log: log}
}

// Busy reports whether an ask is in flight.
func (p *RequestPipeline) Busy() bool {
	return p.asking.Load()
}

// Uploading reports whether an upload is in flight.
func (p *RequestPipeline) Uploading() bool {
	return p.uploading.Load()
}

// Upload validates and ships a document to the backend. The media type
// check happens before any network call. On failure the log is untouched;
// the returned error is always *ports.UploadError (or ErrInvalidFileType)
// so the caller can surface it on the alert channel.
func (p *RequestPipeline) Upload(ctx context.Context, doc *entities.Document) (*ports.UploadResult, error) {
	if !doc.IsPDF() {
		return nil, ports.ErrInvalidFileType
	}

	p.uploading.Store(true)
	defer p.uploading.Store(false)

	res, err := p.backend.Upload(ctx, doc.Name, bytes.NewReader(doc.Content))
	if err != nil {
		var upErr *ports.UploadError
		if errors.As(err, &upErr) {
			return nil, upErr
		}
		// Transport failure, no structured detail available.
		return nil, &ports.UploadError{Detail: uploadRetryDetail}
	}
	return res, nil
}

// Ask runs the three-step ask protocol: append the user's question,
// append a placeholder, then atomically replace the placeholder with the
// resolved answer or failure text. Exactly three log mutations, in that
// order. The resolved message is never empty. The returned error mirrors
// what already landed in the transcript; callers use it for logging only.
func (p *RequestPipeline) Ask(ctx context.Context, question string) error {
	p.asking.Store(true)
	defer p.asking.Store(false)

	p.log.Append(entities.NewMessage(entities.OriginUser, question))
	placeholder := entities.NewMessage(entities.OriginAssistant, placeholderText)
	p.log.Append(placeholder)

	answer, err := p.backend.Ask(ctx, question)
	if err != nil {
		p.log.Replace(placeholder.ID, entities.NewMessage(entities.OriginAssistant, askFailureText(err)))
		return err
	}

	if answer == "" {
		answer = noAnswerFallback
	}
	p.log.Replace(placeholder.ID, entities.NewMessage(entities.OriginAssistant, answer))
	return nil
}

// askFailureText converts an ask failure into the transcript message.
// Server-reported details are quoted verbatim; transport failures get
// the generic connectivity text.
func askFailureText(err error) string {
	var askErr *ports.AskError
	if errors.As(err, &askErr) {
		return "Error: " + askErr.Detail
	}
	return connectivityFallback
}
