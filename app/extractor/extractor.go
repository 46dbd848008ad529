package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Extractor turns document bytes into plain text using a format-specific
// strategy. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	primary   PDFEngine
	secondary PDFEngine
	ocr       OCRClient
}

// New creates an Extractor with the production PDF engines and the given
// OCR client. A nil OCR client disables image extraction: image requests
// then fail with ErrOCRUnavailable.
func New(ocr OCRClient) *Extractor {
	return &Extractor{
		primary:   &textLayerEngine{},
		secondary: &muPDFEngine{},
		ocr:       ocr,
	}
}

// NewWithEngines creates an Extractor with explicit PDF engines. Used by
// tests to substitute fakes.
func NewWithEngines(primary, secondary PDFEngine, ocr OCRClient) *Extractor {
	return &Extractor{primary: primary, secondary: secondary, ocr: ocr}
}

// Run extracts text from data according to the declared format. An empty
// result with a nil error means extraction succeeded mechanically but
// found no text; the caller decides whether that is an error.
func (e *Extractor) Run(ctx context.Context, data []byte, format Format) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	switch format {
	case FormatPlain:
		return e.runPlain(data)
	case FormatWord:
		return e.runWord(data)
	case FormatPDF:
		return e.runPDF(data), nil
	case FormatImage:
		return e.runImage(ctx, data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// runPlain returns the input verbatim. Invalid UTF-8 is a decode error,
// not something to repair.
func (e *Extractor) runPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	return string(data), nil
}

func (e *Extractor) runWord(data []byte) (string, error) {
	text, err := extractDocx(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract Word document: %w", err)
	}
	return norm.NFC.String(text), nil
}

// runPDF tries the primary text-layer engine first; when it errors or
// collects no text, the secondary engine gets exactly one attempt. Both
// failing is not an error here: the caller sees empty text.
func (e *Extractor) runPDF(data []byte) string {
	text, err := e.primary.Run(data)
	if err == nil && text != "" {
		return norm.NFC.String(text)
	}

	if err != nil {
		slog.Warn("Primary PDF engine failed, trying fallback", "error", err)
	} else {
		slog.Debug("Primary PDF engine found no text, trying fallback")
	}

	text, err = e.secondary.Run(data)
	if err != nil {
		slog.Error("Fallback PDF engine also failed", "error", err)
		return ""
	}

	return norm.NFC.String(text)
}

func (e *Extractor) runImage(ctx context.Context, data []byte) (string, error) {
	if e.ocr == nil {
		return "", ErrOCRUnavailable
	}

	text, err := e.ocr.Recognize(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOCRUnavailable, err)
	}

	return norm.NFC.String(strings.TrimSpace(text)), nil
}
