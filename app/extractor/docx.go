package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Word document XML structure (word/document.xml inside the .docx zip).
// Field tags match local element names, so the wordprocessingml namespace
// prefix does not matter.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// extractDocx collects every non-blank paragraph, then every non-blank
// table cell, each trimmed on its own line, in document order. A document
// with no textual content yields "" without an error.
func extractDocx(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open document archive: %w", err)
	}

	var docFile *zip.File
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			docFile = file
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("document has no word/document.xml")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer rc.Close()

	xmlContent, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read document.xml: %w", err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(xmlContent, &doc); err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}

	var lines []string

	for _, para := range doc.Body.Paragraphs {
		if text := strings.TrimSpace(paragraphText(para)); text != "" {
			lines = append(lines, text)
		}
	}

	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			for _, cell := range row.Cells {
				if text := strings.TrimSpace(cellText(cell)); text != "" {
					lines = append(lines, text)
				}
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

func paragraphText(para docxParagraph) string {
	var b strings.Builder
	for _, run := range para.Runs {
		for _, text := range run.Texts {
			b.WriteString(text)
		}
	}
	return b.String()
}

// cellText joins a cell's paragraphs with newlines, the way word
// processors present multi-paragraph cells.
func cellText(cell docxTableCell) string {
	parts := make([]string, 0, len(cell.Paragraphs))
	for _, para := range cell.Paragraphs {
		parts = append(parts, paragraphText(para))
	}
	return strings.Join(parts, "\n")
}
