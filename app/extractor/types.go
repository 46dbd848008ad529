package extractor

import (
	"context"
	"errors"
)

// Format selects the extraction strategy for an uploaded document. The
// format is a caller-supplied dispatch key; the bytes are not re-verified
// against it.
type Format string

const (
	FormatPlain Format = "plain"
	FormatWord  Format = "word"
	FormatPDF   Format = "pdf"
	FormatImage Format = "image"
)

var (
	// ErrDecode means plain-text input was not valid UTF-8.
	ErrDecode = errors.New("text is not valid UTF-8")

	// ErrOCRUnavailable means the OCR capability is missing or failed.
	// Distinct from OCR succeeding on a blank photo, which yields "".
	ErrOCRUnavailable = errors.New("OCR capability unavailable")
)

// FormatFromContentType maps an upload's MIME type to its extraction
// format. Returns false for unsupported types.
func FormatFromContentType(contentType string) (Format, bool) {
	switch contentType {
	case "text/plain":
		return FormatPlain, true
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatWord, true
	case "application/pdf":
		return FormatPDF, true
	case "image/jpeg", "image/jpg", "image/png":
		return FormatImage, true
	default:
		return "", false
	}
}

// PDFEngine extracts the text layer from a PDF document. Two engines are
// configured: a primary one and a secondary fallback with different
// failure characteristics.
type PDFEngine interface {
	Run(data []byte) (string, error)
}

// OCRClient recognizes text in an image. The OCR capability is an external
// collaborator; implementations may fail when the underlying engine is not
// installed.
type OCRClient interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}
