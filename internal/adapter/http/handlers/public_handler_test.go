package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"movequote/internal/adapter/http/handlers/mocks"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func publicRouter(h *PublicQuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/public/:tenant_slug/quote", h.SubmitQuote)
	r.GET("/v1/public/:tenant_slug/quote/:quote_number", h.GetQuote)
	r.GET("/v1/public/:tenant_slug/config", h.TenantConfig)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestPublicQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		body, contentType := multipartBody(t, map[string]string{"customer_phone": "555-1234"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/public/acme/quote", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().SubmitPublic(gomock.Any(), "ghost", gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrTenantNotFound)

		body, contentType := multipartBody(t, map[string]string{
			"customer_email": "ana@example.com",
			"customer_name":  "Ana Souza",
		}, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/public/ghost/quote", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().SubmitPublic(gomock.Any(), "acme", gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrRateLimited)

		body, contentType := multipartBody(t, map[string]string{
			"customer_email": "ana@example.com",
			"customer_name":  "Ana Souza",
		}, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/public/acme/quote", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("success with uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().
			SubmitPublic(gomock.Any(), "acme", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _, _ string, cmd usecase.PublicSubmissionCommand) (entities.Quote, error) {
				if cmd.CustomerEmail != "ana@example.com" || cmd.CustomerName != "Ana Souza" {
					t.Fatalf("unexpected customer %+v", cmd)
				}
				if len(cmd.Files) != 1 || cmd.Files[0].FileName != "room.jpg" {
					t.Fatalf("unexpected files %+v", cmd.Files)
				}
				content, err := io.ReadAll(cmd.Files[0].Content)
				if err != nil || string(content) != "fake-jpeg-bytes" {
					t.Fatalf("unexpected file content %q (%v)", content, err)
				}
				return entities.Quote{ID: "quote-1", QuoteNumber: "Q2026080001", Status: entities.QuoteStatusPending}, nil
			})

		body, contentType := multipartBody(t, map[string]string{
			"customer_email": "ana@example.com",
			"customer_name":  "Ana Souza",
			"notes":          "third floor walkup",
		}, map[string]string{"room.jpg": "fake-jpeg-bytes"})
		req := httptest.NewRequest(http.MethodPost, "/v1/public/acme/quote", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["quote_number"] != "Q2026080001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPublicQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown quote number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().GetPublic(gomock.Any(), "acme", "Q2026089999").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/acme/quote/Q2026089999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success exposes only public fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().GetPublic(gomock.Any(), "acme", "Q2026080001").Return(entities.Quote{
			ID:            "quote-1",
			TenantID:      "tenant-1",
			QuoteNumber:   "Q2026080001",
			Status:        entities.QuoteStatusApproved,
			CustomerEmail: "ana@example.com",
			CustomerName:  "Ana Souza",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/acme/quote/Q2026080001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["quote_number"] != "Q2026080001" || resp["status"] != "approved" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, leaked := resp["id"]; leaked {
			t.Fatalf("internal quote id leaked: %s", w.Body.String())
		}
		if _, leaked := resp["customer_email"]; leaked {
			t.Fatalf("customer email leaked: %s", w.Body.String())
		}
	})
}

func TestPublicQuoteHandler_TenantConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().TenantConfig(gomock.Any(), "ghost").Return(entities.Tenant{}, usecase.ErrTenantNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/ghost/config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success applies setting defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().TenantConfig(gomock.Any(), "acme").Return(entities.Tenant{
			ID:       "tenant-1",
			Slug:     "acme",
			Name:     "Acme Moving",
			LogoURL:  "https://cdn.example.com/acme.png",
			Settings: map[string]string{"max_file_uploads": "10"},
			IsActive: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/acme/config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			TenantSlug string `json:"tenant_slug"`
			TenantName string `json:"tenant_name"`
			Settings   struct {
				AllowCustomerLogin bool `json:"allow_customer_login"`
				MaxFileUploads     int  `json:"max_file_uploads"`
				MaxFileSizeMB      int  `json:"max_file_size_mb"`
			} `json:"settings"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.TenantSlug != "acme" || resp.TenantName != "Acme Moving" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if resp.Settings.MaxFileUploads != 10 || resp.Settings.MaxFileSizeMB != 50 || resp.Settings.AllowCustomerLogin {
			t.Fatalf("unexpected settings: %s", w.Body.String())
		}
	})
}
