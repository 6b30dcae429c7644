package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/adapter/http/middleware"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
	"movequote/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles staff-facing quote requests. The tenant is taken from
// the request context set by the tenant middleware.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	quote, err := h.usecase.Create(c.Request.Context(), tenant.ID, cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	detail, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter := usecase.QuoteFilter{
		Status:        entities.QuoteStatus(c.Query("status")),
		CustomerEmail: c.Query("customer_email"),
		Page:          queryInt(c, "page"),
		PerPage:       queryInt(c, "per_page"),
	}

	tenant := middleware.TenantFrom(c)
	page, err := h.usecase.List(c.Request.Context(), tenant.ID, filter)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePage(page))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	quote, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) AddQuoteItem(c *gin.Context) {
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	item, err := h.usecase.AddItem(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *QuoteHandler) RemoveQuoteItem(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	if err := h.usecase.RemoveItem(c.Request.Context(), tenant.ID, c.Param("id"), c.Param("item_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) RecalculateQuote(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	quote, err := h.usecase.Recalculate(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerEmailRequired),
		errors.Is(err, usecase.ErrCustomerNameRequired),
		errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteItemNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_ITEM_NOT_FOUND", "Quote item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDefaultPricingRule), errors.Is(err, usecase.ErrNoPricingRule):
		return pkg.NewDomainErrorSimple("NO_PRICING_RULE", "No pricing rule configured for this tenant", http.StatusConflict)
	case errors.Is(err, usecase.ErrRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
