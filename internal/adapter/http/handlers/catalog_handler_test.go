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

func TestCatalogHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/catalog/items", h.CreateItem) })

		w := doJSON(r, http.MethodPost, "/v1/catalog/items", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/catalog/items", h.CreateItem) })

		w := doJSON(r, http.MethodPost, "/v1/catalog/items", `{"category":"Furniture"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.POST("/catalog/items", h.CreateItem) })

		uc.EXPECT().
			Create(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, tenantID string, cmd usecase.CatalogItemCommand) (entities.CatalogItem, error) {
				if cmd.Name != "Sofa" || len(cmd.Aliases) != 2 {
					t.Fatalf("unexpected command %+v", cmd)
				}
				if cmd.BaseCubicFeet == nil || !cmd.BaseCubicFeet.Equal(decimal.NewFromInt(50)) {
					t.Fatalf("unexpected cubic feet %+v", cmd.BaseCubicFeet)
				}
				return entities.CatalogItem{ID: "cat-1", TenantID: tenantID, Name: cmd.Name, Aliases: cmd.Aliases, IsActive: true, LaborMultiplier: decimal.NewFromInt(1)}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/catalog/items", `{"name":"Sofa","aliases":["couch","settee"],"base_cubic_feet":50}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "Sofa" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.GET("/catalog/items/:id", h.GetItem) })

		uc.EXPECT().Get(gomock.Any(), "tenant-1", "missing").Return(entities.CatalogItem{}, usecase.ErrCatalogItemNotFound)

		w := doJSON(r, http.MethodGet, "/v1/catalog/items/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.GET("/catalog/items", h.ListItems) })

		uc.EXPECT().
			List(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, filter usecase.CatalogFilter) (usecase.CatalogPage, error) {
				if filter.Category != "Furniture" || filter.Search != "sofa" {
					t.Fatalf("unexpected filter %+v", filter)
				}
				return usecase.CatalogPage{
					Items:       []entities.CatalogItem{{ID: "cat-1", Name: "Sofa"}},
					Total:       1,
					Pages:       1,
					CurrentPage: 1,
					PerPage:     20,
				}, nil
			})

		w := doJSON(r, http.MethodGet, "/v1/catalog/items?category=Furniture&search=sofa", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.GET("/catalog/categories", h.ListCategories) })

		uc.EXPECT().Categories(gomock.Any(), "tenant-1").Return([]string{"Appliances", "Furniture"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/catalog/categories", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Categories []string `json:"categories"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Categories) != 2 || body.Categories[0] != "Appliances" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.PATCH("/catalog/items/:id", h.UpdateItem) })

		uc.EXPECT().Update(gomock.Any(), "tenant-1", "cat-1", gomock.Any()).Return(entities.CatalogItem{ID: "cat-1", Name: "Sectional Sofa"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/catalog/items/cat-1", `{"name":"Sectional Sofa"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := staffRouter(ctrl, func(rg *gin.RouterGroup) { rg.DELETE("/catalog/items/:id", h.DeleteItem) })

		uc.EXPECT().Delete(gomock.Any(), "tenant-1", "cat-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/catalog/items/cat-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrCatalogNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrInvalidCubicFeet); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrCatalogItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
