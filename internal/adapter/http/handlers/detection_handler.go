package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/adapter/http/middleware"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
	"movequote/pkg"
)

var (
	errInvalidDetectionPayload = pkg.NewDomainErrorSimple("INVALID_DETECTION_INPUT", "Invalid detection payload", http.StatusBadRequest)
)

// DetectionHandler handles staff detection requests. Detection runs are
// synchronous: the response carries the terminal job.

type DetectionHandler struct {
	usecase usecase.IDetectionUseCase
}

func NewDetectionHandler(uc usecase.IDetectionUseCase) *DetectionHandler {
	return &DetectionHandler{usecase: uc}
}

func (h *DetectionHandler) DetectText(c *gin.Context) {
	var payload request.TextDetectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDetectionPayload.HTTPStatus, errInvalidDetectionPayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	job, err := h.usecase.DetectText(c.Request.Context(), tenant.ID, payload.ToCommand())
	if err != nil {
		appErr := mapDetectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDetectionJob(job))
}

func (h *DetectionHandler) DetectAuto(c *gin.Context) {
	var payload request.AutoDetectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDetectionPayload.HTTPStatus, errInvalidDetectionPayload.ToHTTPError())
		return
	}

	tenant := middleware.TenantFrom(c)
	job, err := h.usecase.DetectAuto(c.Request.Context(), tenant.ID, payload.QuoteID)
	if err != nil {
		appErr := mapDetectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDetectionJob(job))
}

func (h *DetectionHandler) GetJob(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	job, err := h.usecase.GetJob(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		appErr := mapDetectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDetectionJob(job))
}

func (h *DetectionHandler) ListJobs(c *gin.Context) {
	filter := usecase.JobFilter{
		Status:  entities.DetectionJobStatus(c.Query("status")),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
	}

	tenant := middleware.TenantFrom(c)
	page, err := h.usecase.ListJobs(c.Request.Context(), tenant.ID, filter)
	if err != nil {
		appErr := mapDetectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobPage(page))
}

func mapDetectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPromptRequired), errors.Is(err, usecase.ErrNoMediaFiles):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("DETECTION_JOB_NOT_FOUND", "Detection job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyTerminal):
		return pkg.NewDomainErrorSimple("DETECTION_JOB_ALREADY_PROCESSED", "Detection job already processed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
