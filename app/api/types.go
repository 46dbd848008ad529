package api

import (
	"context"

	"github.com/listscan/listscan/app/extractor"
	"github.com/listscan/listscan/app/grocery"
)

type ExtractorInterface interface {
	Run(ctx context.Context, data []byte, format extractor.Format) (string, error)
}

var _ ExtractorInterface = (*extractor.Extractor)(nil)

type ParserInterface interface {
	Run(text string) []grocery.Item
	RunVoice(text string) []grocery.Item
}

var _ ParserInterface = (*grocery.Parser)(nil)

type Handler struct {
	extractor     ExtractorInterface
	parser        ParserInterface
	maxUploadSize int64
	environment   string
}
