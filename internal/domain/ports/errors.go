package ports

import "errors"

// ErrInvalidFileType is returned by local validation before any network
// call when the selected file is not a PDF.
var ErrInvalidFileType = errors.New("invalid file type: please select a PDF file")

// ErrInFlight is returned when a question is submitted while another
// request is still being processed. Requests are never queued.
var ErrInFlight = errors.New("a request is already in flight")

// UploadError is a failed upload, either a non-success HTTP status or a
// transport failure. Detail carries the server's structured error text
// when one was present, else a generic fallback. It is surfaced as a
// status indicator, not as a conversation message.
type UploadError struct {
	Detail string
}

func (e *UploadError) Error() string {
	return "upload failed: " + e.Detail
}

// AskError is a non-success response from the ask endpoint. Detail
// carries the server's structured error text when one was present. It is
// surfaced as a regular assistant message so it stays in the transcript.
type AskError struct {
	Detail string
}

func (e *AskError) Error() string {
	return "ask failed: " + e.Detail
}
