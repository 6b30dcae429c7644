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
	errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_PRICING_RULE_INPUT", "Invalid pricing rule payload", http.StatusBadRequest)
)

// PricingRuleHandler handles staff pricing-rule management requests.

type PricingRuleHandler struct {
	usecase usecase.IPricingRuleUseCase
}

func NewPricingRuleHandler(uc usecase.IPricingRuleUseCase) *PricingRuleHandler {
	return &PricingRuleHandler{usecase: uc}
}

func (h *PricingRuleHandler) CreateRule(c *gin.Context) {
	var payload request.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	rule, err := h.usecase.Create(c.Request.Context(), tenant.ID, payload.ToCommand())
	if err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPricingRule(rule))
}

func (h *PricingRuleHandler) GetRule(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	rule, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRule(rule))
}

func (h *PricingRuleHandler) ListRules(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	rules, err := h.usecase.List(c.Request.Context(), tenant.ID)
	if err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRules(rules))
}

func (h *PricingRuleHandler) UpdateRule(c *gin.Context) {
	var payload request.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	rule, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRule(rule))
}

func (h *PricingRuleHandler) SetDefaultRule(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	rule, err := h.usecase.SetDefault(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRule(rule))
}

func (h *PricingRuleHandler) DeleteRule(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	if err := h.usecase.Delete(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		appErr := mapPricingRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPricingRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRuleNameRequired), errors.Is(err, usecase.ErrInvalidRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingRuleNotFound):
		return pkg.NewDomainErrorSimple("PRICING_RULE_NOT_FOUND", "Pricing rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
