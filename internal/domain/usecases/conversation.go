package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
	"github.com/infogenie/infogenie-go/internal/domain/ports"
)

const notReadyText = "Please upload a PDF file first before asking questions."

// Conversation orchestrates the upload gate, the request pipeline and the
// message log into the two user-facing operations. One instance per
// session; there is no terminal state.
type Conversation struct {
	gate     *entities.UploadGate
	pipeline *RequestPipeline
	log      *entities.MessageLog
}

// NewConversation creates a controller over the given pipeline and log.
func NewConversation(pipeline *RequestPipeline, log *entities.MessageLog) *Conversation {
	return &Conversation{
		gate:     entities.NewUploadGate(),
		pipeline: pipeline,
		log:      log,
	}
}

// SubmitQuestion runs the ask protocol for a question. Before a document
// is loaded it appends a single not-ready notice per call and issues no
// network request. While any request is in flight it returns ErrInFlight
// without touching the log.
func (c *Conversation) SubmitQuestion(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil
	}
	if !c.gate.IsReady() {
		c.log.Append(entities.NewMessage(entities.OriginAssistant, notReadyText))
		return nil
	}
	if c.pipeline.Busy() || c.pipeline.Uploading() {
		return ports.ErrInFlight
	}
	return c.pipeline.Ask(ctx, question)
}

// SubmitUpload ships a document to the backend. Accepted in any gate
// state. On success the gate opens for the new filename and the
// transcript is reset to a single welcome message; prior conversation is
// deliberately discarded. On failure nothing changes.
func (c *Conversation) SubmitUpload(ctx context.Context, doc *entities.Document) (*ports.UploadResult, error) {
	res, err := c.pipeline.Upload(ctx, doc)
	if err != nil {
		return nil, err
	}

	c.gate.MarkReady(res.Filename)
	c.log.Reset([]entities.Message{
		entities.NewMessage(entities.OriginAssistant, welcomeText(res.Filename)),
	})
	return res, nil
}

// Ready reports whether a document has been ingested.
func (c *Conversation) Ready() bool {
	return c.gate.IsReady()
}

// Filename returns the active document name, empty while not ready.
func (c *Conversation) Filename() string {
	return c.gate.Filename()
}

// Messages returns a snapshot of the transcript for rendering.
func (c *Conversation) Messages() []entities.Message {
	return c.log.Messages()
}

func welcomeText(filename string) string {
	return fmt.Sprintf("Great! I've loaded %q. You can now ask me questions about this document.", filename)
}
