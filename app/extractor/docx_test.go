package extractor

import (
	"archive/zip"
	"bytes"
	"testing"
)

// buildDocx assembles a minimal .docx archive with the given
// word/document.xml body content.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Failed to create document.xml: %v", err)
	}

	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body + `</w:body></w:document>`

	if _, err := f.Write([]byte(doc)); err != nil {
		t.Fatalf("Failed to write document.xml: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	return buf.Bytes()
}

func paragraph(text string) string {
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func TestExtractDocx_Paragraphs(t *testing.T) {
	data := buildDocx(t, paragraph("Apples")+paragraph("  Bananas  ")+paragraph("")+paragraph("Milk"))

	text, err := extractDocx(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Apples\nBananas\nMilk"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestExtractDocx_ParagraphsBeforeTables(t *testing.T) {
	body := paragraph("First paragraph") +
		`<w:tbl><w:tr>` +
		`<w:tc>` + paragraph("Cell A") + `</w:tc>` +
		`<w:tc>` + paragraph("Cell B") + `</w:tc>` +
		`</w:tr><w:tr>` +
		`<w:tc>` + paragraph("") + `</w:tc>` +
		`<w:tc>` + paragraph("Cell D") + `</w:tc>` +
		`</w:tr></w:tbl>` +
		paragraph("Second paragraph")

	data := buildDocx(t, body)

	text, err := extractDocx(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// All paragraphs come first, then table cells in row order; the blank
	// cell is skipped.
	expected := "First paragraph\nSecond paragraph\nCell A\nCell B\nCell D"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestExtractDocx_MultiRunParagraph(t *testing.T) {
	body := `<w:p><w:r><w:t>Gro</w:t></w:r><w:r><w:t>cer</w:t></w:r><w:r><w:t>ies</w:t></w:r></w:p>`
	data := buildDocx(t, body)

	text, err := extractDocx(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Groceries" {
		t.Errorf("Expected 'Groceries', got %q", text)
	}
}

func TestExtractDocx_EmptyDocument(t *testing.T) {
	data := buildDocx(t, "")

	text, err := extractDocx(data)
	if err != nil {
		t.Fatalf("Empty document is not an error, got: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestExtractDocx_NotAZip(t *testing.T) {
	if _, err := extractDocx([]byte("this is not a docx file")); err == nil {
		t.Error("Expected error for non-zip input, got nil")
	}
}

func TestExtractDocx_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("Failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("Failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	if _, err := extractDocx(buf.Bytes()); err == nil {
		t.Error("Expected error for archive without document.xml, got nil")
	}
}
