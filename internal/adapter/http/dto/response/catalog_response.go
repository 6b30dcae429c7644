package response

import (
	"time"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
)

type CatalogItemResponse struct {
	ID              string           `json:"id"`
	TenantID        string           `json:"tenant_id"`
	Name            string           `json:"name"`
	Aliases         []string         `json:"aliases"`
	Category        string           `json:"category,omitempty"`
	BaseCubicFeet   *decimal.Decimal `json:"base_cubic_feet,omitempty"`
	LaborMultiplier decimal.Decimal  `json:"labor_multiplier"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func FromCatalogItem(item entities.CatalogItem) CatalogItemResponse {
	aliases := item.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return CatalogItemResponse{
		ID:              item.ID,
		TenantID:        item.TenantID,
		Name:            item.Name,
		Aliases:         aliases,
		Category:        item.Category,
		BaseCubicFeet:   item.BaseCubicFeet,
		LaborMultiplier: item.LaborMultiplier,
		IsActive:        item.IsActive,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

type CatalogListResponse struct {
	Items      []CatalogItemResponse `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

func FromCatalogPage(page usecase.CatalogPage) CatalogListResponse {
	items := make([]CatalogItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, FromCatalogItem(item))
	}
	return CatalogListResponse{
		Items: items,
		Pagination: Pagination{
			Total:       page.Total,
			Pages:       page.Pages,
			CurrentPage: page.CurrentPage,
			PerPage:     page.PerPage,
		},
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
