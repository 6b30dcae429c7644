package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"movequote/internal/adapter/http/handlers/mocks"
	"movequote/internal/domain/entities"
	"movequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPricingRuleHandler_CreateRule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/pricing-rules", h.CreateRule) })

		w := doJSON(r, http.MethodPost, "/v1/pricing-rules", `{"rate_per_cubic_foot":8.5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative rate mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/pricing-rules", h.CreateRule) })

		uc.EXPECT().Create(gomock.Any(), "tenant-1", gomock.Any()).Return(entities.PricingRule{}, usecase.ErrInvalidRate)

		w := doJSON(r, http.MethodPost, "/v1/pricing-rules", `{"name":"Standard","rate_per_cubic_foot":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/pricing-rules", h.CreateRule) })

		uc.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, tenantID string, cmd usecase.PricingRuleCommand) (entities.PricingRule, error) {
				if cmd.Name != "Standard" {
					t.Fatalf("unexpected name %q", cmd.Name)
				}
				if cmd.RatePerCubicFoot == nil || !cmd.RatePerCubicFoot.Equal(decimal.RequireFromString("8.5")) {
					t.Fatalf("unexpected rate %+v", cmd.RatePerCubicFoot)
				}
				if cmd.IsDefault == nil || !*cmd.IsDefault {
					t.Fatalf("expected default flag")
				}
				return entities.PricingRule{ID: "rule-1", TenantID: tenantID, Name: cmd.Name, IsDefault: true, IsActive: true}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/pricing-rules", `{"name":"Standard","rate_per_cubic_foot":8.5,"is_default":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_default"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPricingRuleHandler_ListAndDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.GET("/pricing-rules", h.ListRules) })

		uc.EXPECT().List(gomock.Any(), "tenant-1").Return([]entities.PricingRule{
			{ID: "rule-1", Name: "Standard", IsDefault: true},
			{ID: "rule-2", Name: "Premium"},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/pricing-rules", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Rules []map[string]any `json:"rules"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Rules) != 2 || body.Rules[0]["is_default"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("set default not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/pricing-rules/:id/default", h.SetDefaultRule) })

		uc.EXPECT().SetDefault(gomock.Any(), "tenant-1", "missing").Return(entities.PricingRule{}, usecase.ErrPricingRuleNotFound)

		w := doJSON(r, http.MethodPost, "/v1/pricing-rules/missing/default", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("set default success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/pricing-rules/:id/default", h.SetDefaultRule) })

		uc.EXPECT().SetDefault(gomock.Any(), "tenant-1", "rule-2").Return(entities.PricingRule{ID: "rule-2", IsDefault: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/pricing-rules/rule-2/default", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingRuleUseCase(ctrl)
		h := NewPricingRuleHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.DELETE("/pricing-rules/:id", h.DeleteRule) })

		uc.EXPECT().Delete(gomock.Any(), "tenant-1", "rule-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/pricing-rules/rule-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapPricingRuleError(t *testing.T) {
	if got := mapPricingRuleError(usecase.ErrRuleNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingRuleError(usecase.ErrInvalidRate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingRuleError(usecase.ErrPricingRuleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPricingRuleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
