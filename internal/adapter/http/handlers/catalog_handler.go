package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/adapter/http/middleware"
	"movequote/internal/usecase"
	"movequote/pkg"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog item payload", http.StatusBadRequest)
)

// CatalogHandler handles staff catalog management requests.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var payload request.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	item, err := h.usecase.Create(c.Request.Context(), tenant.ID, payload.ToCommand())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCatalogItem(item))
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	item, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	filter := usecase.CatalogFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
	}

	tenant := middleware.TenantFrom(c)
	page, err := h.usecase.List(c.Request.Context(), tenant.ID, filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogPage(page))
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	item, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	if err := h.usecase.Delete(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	categories, err := h.usecase.Categories(c.Request.Context(), tenant.ID)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: categories})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogNameRequired), errors.Is(err, usecase.ErrInvalidCubicFeet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
