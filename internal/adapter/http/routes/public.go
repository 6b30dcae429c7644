package routes

import (
	"movequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPublic = "/public"
)

func addPublicRoutes(rg *gin.RouterGroup, publicHandler *handlers.PublicQuoteHandler) {
	public := rg.Group(PathPublic)
	{
		// Unauthenticated widget intake; throttled inside the use case.
		public.POST("/:tenant_slug/quote", publicHandler.SubmitQuote)
		public.GET("/:tenant_slug/quote/:quote_number", publicHandler.GetQuote)
		public.GET("/:tenant_slug/config", publicHandler.TenantConfig)
	}
}
