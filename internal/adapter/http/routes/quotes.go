package routes

import (
	"movequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuote)
		quotes.POST("/:id/items", quoteHandler.AddQuoteItem)
		quotes.DELETE("/:id/items/:item_id", quoteHandler.RemoveQuoteItem)
		quotes.POST("/:id/recalculate", quoteHandler.RecalculateQuote)
	}
}
