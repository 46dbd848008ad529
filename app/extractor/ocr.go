package extractor

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient recognizes image text through the Tesseract engine.
// Tesseract must be installed on the host; when it is not, recognition
// fails and the extractor reports ErrOCRUnavailable.
type TesseractClient struct {
	language string
}

// NewTesseractClient creates an OCR client for the given language
// (e.g. "eng", or "eng+deu" for multiple).
func NewTesseractClient(language string) *TesseractClient {
	return &TesseractClient{language: language}
}

// Recognize runs OCR on the raw image bytes. A fresh gosseract client is
// created per call: the underlying client is not safe for concurrent use,
// and per-call lifetime keeps the extractor lock-free.
func (c *TesseractClient) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if c.language != "" {
		if err := client.SetLanguage(c.language); err != nil {
			return "", fmt.Errorf("failed to set OCR language: %w", err)
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}
