package routes

import (
	"movequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricingRules = "/pricing-rules"
)

func addPricingRuleRoutes(rg *gin.RouterGroup, ruleHandler *handlers.PricingRuleHandler) {
	rules := rg.Group(PathPricingRules)
	{
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.GET("/:id", ruleHandler.GetRule)
		rules.PATCH("/:id", ruleHandler.UpdateRule)
		rules.POST("/:id/default", ruleHandler.SetDefaultRule)
		rules.DELETE("/:id", ruleHandler.DeleteRule)
	}
}
