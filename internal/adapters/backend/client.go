// Package backend provides the HTTP adapter for the remote document QA
// service. Adapter implementing ports.DocumentQA.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/infogenie/infogenie-go/internal/domain/entities"
	"github.com/infogenie/infogenie-go/internal/domain/ports"
)

// DefaultBaseURL is where the backend listens when nothing is configured.
const DefaultBaseURL = "http://localhost:8000"

const defaultUploadMessage = "PDF uploaded successfully!"

// Client implements ports.DocumentQA over HTTP. Ask and upload may target
// different bases; by default both use the same one.
type Client struct {
	baseURL   string
	uploadURL string
	client    *http.Client
}

// NewClient creates a backend client. uploadURL falls back to baseURL so
// both endpoints are served from one configurable base unless explicitly
// split.
func NewClient(baseURL, uploadURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if uploadURL == "" {
		uploadURL = baseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		uploadURL: uploadURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// askRequest is the ask endpoint request body.
type askRequest struct {
	Query string `json:"query"`
}

// askResponse is the ask endpoint response. Answer is preferred,
// Response is a legacy fallback field.
type askResponse struct {
	Answer   string `json:"answer"`
	Response string `json:"response"`
}

// errorResponse is the structured error body on non-success statuses.
type errorResponse struct {
	Detail string `json:"detail"`
}

// uploadResponse is the upload endpoint response body.
type uploadResponse struct {
	Message string `json:"message"`
}

// healthResponse is the root health endpoint body.
type healthResponse struct {
	Status string `json:"status"`
}

// Upload posts the document as a multipart form with a single "file"
// part. The returned filename is the submitted one; the response only
// contributes the status message.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*ports.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", entities.MediaTypePDF)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling upload endpoint: %w", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, &ports.UploadError{Detail: decodeDetail(resp.Body, "Upload failed")}
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		body.Message = defaultUploadMessage
	}
	return &ports.UploadResult{Filename: filename, Message: body.Message}, nil
}

// Ask posts the question as JSON and returns the answer text. The answer
// field is preferred over response; an empty string means the backend had
// neither, and the caller decides the fallback wording.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	payload, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ask endpoint: %w", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", &ports.AskError{Detail: decodeDetail(resp.Body, "Failed to get response")}
	}

	var body askResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if body.Answer != "" {
		return body.Answer, nil
	}
	return body.Response, nil
}

// Health checks the backend's root status endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling health endpoint: %w", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return body.Status, nil
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

// decodeDetail extracts the structured error detail from a non-success
// body, falling back to a generic string when absent or malformed.
func decodeDetail(r io.Reader, fallback string) string {
	var body errorResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Detail == "" {
		return fallback
	}
	return body.Detail
}
