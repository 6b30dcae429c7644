package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/usecase"
	"movequote/pkg"
)

var (
	errInvalidSubmission = pkg.NewDomainErrorSimple("INVALID_SUBMISSION", "Invalid quote submission", http.StatusBadRequest)
)

// PublicQuoteHandler handles unauthenticated widget submissions. The tenant
// comes from the URL, not from a header, and throttling happens inside the
// use case so the limit also covers non-HTTP entry points.

type PublicQuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewPublicQuoteHandler(uc usecase.IQuoteUseCase) *PublicQuoteHandler {
	return &PublicQuoteHandler{usecase: uc}
}

func (h *PublicQuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.PublicQuoteRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidSubmission.HTTPStatus, errInvalidSubmission.ToHTTPError())
		return
	}

	var headers []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		headers = form.File["files"]
	}

	cmd, closeFiles, err := payload.ToCommand(headers)
	if err != nil {
		c.JSON(errInvalidSubmission.HTTPStatus, errInvalidSubmission.ToHTTPError())
		return
	}
	defer closeFiles()

	quote, err := h.usecase.SubmitPublic(c.Request.Context(), c.Param("tenant_slug"), c.ClientIP(), cmd)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote is the customer-facing status lookup; it exposes only the limited
// public field set.
func (h *PublicQuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetPublic(c.Request.Context(), c.Param("tenant_slug"), c.Param("quote_number"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicQuote(quote))
}

// TenantConfig serves the widget bootstrap configuration.
func (h *PublicQuoteHandler) TenantConfig(c *gin.Context) {
	tenant, err := h.usecase.TenantConfig(c.Request.Context(), c.Param("tenant_slug"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenantConfig(tenant))
}
