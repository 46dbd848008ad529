package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/listscan/listscan/app/cfg"
	"github.com/listscan/listscan/app/extractor"
)

func NewHandler(ext ExtractorInterface, parser ParserInterface) *Handler {
	appCfg := cfg.Get()

	return &Handler{
		extractor:     ext,
		parser:        parser,
		maxUploadSize: appCfg.MaxUploadSize,
		environment:   appCfg.Environment,
	}
}

// ParseDocument accepts a multipart document upload, extracts its text,
// and returns the grocery items found in it.
func (h *Handler) ParseDocument(c *gin.Context) {
	uploadID := uuid.NewString()

	data, filename, format, ok := h.readUpload(c)
	if !ok {
		return
	}

	if listID := c.PostForm("list_id"); listID != "" {
		slog.Debug("Upload associated with list", "upload_id", uploadID, "list_id", listID)
	}

	text, ok := h.extractText(c, uploadID, data, filename, format)
	if !ok {
		return
	}

	items := h.parser.Run(text)

	slog.Info("Document parsed",
		"upload_id", uploadID,
		"filename", filename,
		"format", string(format),
		"text_length", len(text),
		"items", len(items))

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"filename":       filename,
		"extracted_text": text,
		"items":          items,
		"count":          len(items),
	})
}

// ExtractText returns a document's raw extracted text without item
// parsing.
func (h *Handler) ExtractText(c *gin.Context) {
	uploadID := uuid.NewString()

	data, filename, format, ok := h.readUpload(c)
	if !ok {
		return
	}

	text, ok := h.extractText(c, uploadID, data, filename, format)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"text":    text,
	})
}

// ParseVoice extracts items from a voice transcription, which arrives as
// free-form text rather than a document.
func (h *Handler) ParseVoice(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'text' field"})
		return
	}

	items := h.parser.RunVoice(req.Text)

	slog.Info("Voice transcription parsed", "text_length", len(req.Text), "items", len(items))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"count":   len(items),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": h.environment,
		"timestamp":   time.Now().In(time.Local).Format(time.RFC3339),
	})
}

// readUpload validates and buffers the multipart file upload. On failure
// the response has already been written and ok is false.
func (h *Handler) readUpload(c *gin.Context) (data []byte, filename string, format extractor.Format, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return nil, "", "", false
	}

	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Uploaded file is too large"})
		return nil, "", "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	format, supported := extractor.FormatFromContentType(contentType)
	if !supported {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type: " + contentType})
		return nil, "", "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("Failed to open upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return nil, "", "", false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return nil, "", "", false
	}

	return data, fileHeader.Filename, format, true
}

// extractText runs the extractor and maps its failure modes onto HTTP
// statuses. Empty extracted text is a client-visible failure at this
// layer even though the extractor treats it as a valid output state.
func (h *Handler) extractText(c *gin.Context, uploadID string, data []byte, filename string, format extractor.Format) (string, bool) {
	text, err := h.extractor.Run(c.Request.Context(), data, format)
	if err != nil {
		switch {
		case errors.Is(err, extractor.ErrDecode):
			slog.Warn("Upload is not valid text", "upload_id", uploadID, "filename", filename)
			c.JSON(http.StatusBadRequest, gin.H{"error": "File is not valid UTF-8 text"})
		case errors.Is(err, extractor.ErrOCRUnavailable):
			slog.Error("OCR unavailable", "upload_id", uploadID, "filename", filename, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "OCR processing failed. Ensure Tesseract is installed."})
		default:
			slog.Error("Extraction failed", "upload_id", uploadID, "filename", filename, "format", string(format), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing document"})
		}
		return "", false
	}

	if strings.TrimSpace(text) == "" {
		slog.Warn("No text extracted", "upload_id", uploadID, "filename", filename, "format", string(format))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from document"})
		return "", false
	}

	return text, true
}
