// Package console provides the interactive terminal frontend.
// Framework/driver layer - outermost circle; the conversation core knows
// nothing about it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
	"github.com/infogenie/infogenie-go/internal/domain/ports"
	"github.com/infogenie/infogenie-go/internal/domain/usecases"
)

// HealthChecker is implemented by backends that expose a status probe.
type HealthChecker interface {
	Health(ctx context.Context) (string, error)
}

// Console is a line-oriented chat frontend. Transcript entries render as
// they land in the message log; upload failures print as status lines
// outside the transcript.
type Console struct {
	// In and Out default to stdin/stdout; tests override them.
	In  io.Reader
	Out io.Writer

	// Watcher, when set together with a watch directory, auto-uploads
	// documents dropped there.
	Watcher ports.FileWatcher

	// Health, when set, backs the /status command.
	Health HealthChecker

	conv   *usecases.Conversation
	log    *entities.MessageLog
	docs   ports.DocumentLoader
	logger *zap.Logger

	mu      sync.Mutex
	printed map[string]struct{}
}

// New creates a console over the given conversation.
func New(conv *usecases.Conversation, log *entities.MessageLog, docs ports.DocumentLoader, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		In:      os.Stdin,
		Out:     os.Stdout,
		conv:    conv,
		log:     log,
		docs:    docs,
		logger:  logger,
		printed: make(map[string]struct{}),
	}
}

// Run drives the read-eval loop until EOF, /quit, or context
// cancellation. watchDir, when non-empty, is monitored for new PDFs.
func (c *Console) Run(ctx context.Context, watchDir string) error {
	c.log.OnChange(c.render)

	fmt.Fprintln(c.Out, "InfoGenie — chat with your PDF documents.")
	fmt.Fprintln(c.Out, "Upload a document with /upload <path>, then ask away. Type /help for commands.")

	if watchDir != "" && c.Watcher != nil {
		events, err := c.Watcher.Watch(ctx, watchDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", watchDir, err)
		}
		c.status(fmt.Sprintf("Watching %s for new PDFs.", watchDir))
		go func() {
			for ev := range events {
				c.logger.Info("document dropped in watch directory", zap.String("path", ev.Path))
				c.upload(ctx, ev.Path)
			}
		}()
	}

	interactive := c.stdinIsTerminal()
	scanner := bufio.NewScanner(c.In)
	for {
		if interactive {
			fmt.Fprint(c.Out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit", line == "/exit":
			return nil
		case line == "/help":
			c.help()
		case line == "/status":
			c.printStatus(ctx)
		case strings.HasPrefix(line, "/upload"):
			path := strings.TrimSpace(strings.TrimPrefix(line, "/upload"))
			if path == "" {
				c.status("Usage: /upload <path-to-pdf>")
				continue
			}
			c.upload(ctx, path)
		case strings.HasPrefix(line, "/"):
			c.status("Unknown command. Type /help for commands.")
		default:
			if err := c.conv.SubmitQuestion(ctx, line); err != nil {
				if errors.Is(err, ports.ErrInFlight) {
					c.status("Still working on the previous request.")
					continue
				}
				// Failure text already landed in the transcript.
				c.logger.Warn("question failed", zap.Error(err))
			}
		}
	}
	return scanner.Err()
}

// upload loads a local document and submits it. Outcomes surface on the
// status channel, never in the transcript.
func (c *Console) upload(ctx context.Context, path string) {
	doc, err := c.docs.Load(ctx, path)
	if err != nil {
		c.logger.Warn("loading document failed", zap.String("path", path), zap.Error(err))
		c.status(fmt.Sprintf("Could not read %s: %v", path, err))
		return
	}

	res, err := c.conv.SubmitUpload(ctx, doc)
	if err != nil {
		c.logger.Warn("upload failed", zap.String("file", doc.Name), zap.Error(err))
		if errors.Is(err, ports.ErrInvalidFileType) {
			c.status("Please select a valid PDF file.")
			return
		}
		var upErr *ports.UploadError
		if errors.As(err, &upErr) {
			c.status(upErr.Detail)
			return
		}
		c.status(err.Error())
		return
	}

	c.logger.Info("document uploaded", zap.String("file", res.Filename))
	c.status(res.Message)
}

func (c *Console) printStatus(ctx context.Context) {
	if c.conv.Ready() {
		c.status(fmt.Sprintf("Document loaded: %s", c.conv.Filename()))
	} else {
		c.status("No document loaded yet.")
	}
	if c.Health == nil {
		return
	}
	if status, err := c.Health.Health(ctx); err != nil {
		c.status(fmt.Sprintf("Backend unreachable: %v", err))
	} else {
		c.status(fmt.Sprintf("Backend: %s", status))
	}
}

func (c *Console) help() {
	fmt.Fprintln(c.Out, "Commands:")
	fmt.Fprintln(c.Out, "  /upload <path>  upload a PDF document")
	fmt.Fprintln(c.Out, "  /status         show document and backend status")
	fmt.Fprintln(c.Out, "  /quit           exit")
	fmt.Fprintln(c.Out, "Anything else is asked as a question about the loaded document.")
}

// render prints transcript entries that have not been shown yet, in log
// order. A replaced placeholder stays on screen as history; its
// resolution prints as the next line.
func (c *Console) render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, msg := range c.conv.Messages() {
		if _, ok := c.printed[msg.ID]; ok {
			continue
		}
		c.printed[msg.ID] = struct{}{}
		fmt.Fprintf(c.Out, "[%s] %s: %s\n", msg.Timestamp, speaker(msg.Origin), msg.Text)
	}
}

// status prints on the alert channel, outside the transcript.
func (c *Console) status(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, "* %s\n", text)
}

func (c *Console) stdinIsTerminal() bool {
	f, ok := c.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func speaker(origin entities.Origin) string {
	if origin == entities.OriginUser {
		return "You"
	}
	return "InfoGenie"
}
