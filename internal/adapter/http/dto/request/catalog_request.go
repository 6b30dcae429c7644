package request

import "movequote/internal/usecase"

// CreateCatalogItemRequest is the staff catalog-creation payload.
type CreateCatalogItemRequest struct {
	Name            string   `json:"name" binding:"required"`
	Aliases         []string `json:"aliases"`
	Category        string   `json:"category"`
	BaseCubicFeet   *float64 `json:"base_cubic_feet"`
	LaborMultiplier *float64 `json:"labor_multiplier"`
	IsActive        *bool    `json:"is_active"`
}

func (r CreateCatalogItemRequest) ToCommand() usecase.CatalogItemCommand {
	return usecase.CatalogItemCommand{
		Name:            r.Name,
		Aliases:         r.Aliases,
		Category:        r.Category,
		BaseCubicFeet:   decimalPtr(r.BaseCubicFeet),
		LaborMultiplier: decimalPtr(r.LaborMultiplier),
		IsActive:        r.IsActive,
	}
}

// UpdateCatalogItemRequest reuses the same shape without required fields;
// the use case keeps stored values for absent optionals.
type UpdateCatalogItemRequest struct {
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases"`
	Category        string   `json:"category"`
	BaseCubicFeet   *float64 `json:"base_cubic_feet"`
	LaborMultiplier *float64 `json:"labor_multiplier"`
	IsActive        *bool    `json:"is_active"`
}

func (r UpdateCatalogItemRequest) ToCommand() usecase.CatalogItemCommand {
	return usecase.CatalogItemCommand{
		Name:            r.Name,
		Aliases:         r.Aliases,
		Category:        r.Category,
		BaseCubicFeet:   decimalPtr(r.BaseCubicFeet),
		LaborMultiplier: decimalPtr(r.LaborMultiplier),
		IsActive:        r.IsActive,
	}
}
