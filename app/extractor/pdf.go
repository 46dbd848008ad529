package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// textLayerEngine is the primary PDF engine. It reads the embedded text
// layer page by page and joins non-empty pages with newlines. The library
// panics on some malformed PDFs, so every call is panic-guarded and
// converted into an ordinary error for the fallback to handle.
type textLayerEngine struct{}

func (e *textLayerEngine) Run(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("text layer extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// muPDFEngine is the secondary PDF engine, backed by MuPDF. It handles
// documents the text-layer reader chokes on, at the cost of a cgo
// dependency.
type muPDFEngine struct{}

func (e *muPDFEngine) Run(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}
