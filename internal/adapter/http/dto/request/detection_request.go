package request

import "movequote/internal/usecase"

// TextDetectionRequest starts a prompt-driven detection run on a quote's
// uploaded media.
type TextDetectionRequest struct {
	QuoteID      string `json:"quote_id" binding:"required"`
	Prompt       string `json:"prompt" binding:"required"`
	AutoAddItems bool   `json:"auto_add_items"`
}

func (r TextDetectionRequest) ToCommand() usecase.TextDetectionCommand {
	return usecase.TextDetectionCommand{
		QuoteID:      r.QuoteID,
		Prompt:       r.Prompt,
		AutoAddItems: r.AutoAddItems,
	}
}

// AutoDetectionRequest starts an automatic detection run; matches above the
// confidence bar are always added to the quote.
type AutoDetectionRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}
