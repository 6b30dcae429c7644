package routes

import (
	"movequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.POST("/items", catalogHandler.CreateItem)
		catalog.GET("/items", catalogHandler.ListItems)
		catalog.GET("/items/:id", catalogHandler.GetItem)
		catalog.PATCH("/items/:id", catalogHandler.UpdateItem)
		catalog.DELETE("/items/:id", catalogHandler.DeleteItem)
		catalog.GET("/categories", catalogHandler.ListCategories)
	}
}
