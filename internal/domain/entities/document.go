package entities

// MediaTypePDF is the only media type the backend ingests.
const MediaTypePDF = "application/pdf"

// Document is a local file staged for upload. Content is held in memory
// for the duration of the request, like a browser file input selection.
type Document struct {
	Name      string // base filename, echoed back by the gate on success
	Path      string
	MediaType string
	Content   []byte
}

// IsPDF reports whether the document carries the PDF media type.
func (d *Document) IsPDF() bool {
	return d.MediaType == MediaTypePDF
}
