package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem is a tenant-defined reference item used to price detected or
// manually entered objects ("Sofa", "Queen Bed", ...).
//
// Matching notes:
//   - Aliases are compared case-insensitively against detected labels.
//   - Only active items participate in matching.
//   - BaseCubicFeet is optional; a matched item without a volume contributes
//     nothing to the quote's cubic-feet total.
//
// Line items hold a weak reference to a catalog item: deleting a catalog item
// never cascades into quotes.
type CatalogItem struct {
	ID              string           `json:"id"`
	TenantID        string           `json:"tenant_id"`
	Name            string           `json:"name"`
	Aliases         []string         `json:"aliases,omitempty"`
	Category        string           `json:"category,omitempty"`
	BaseCubicFeet   *decimal.Decimal `json:"base_cubic_feet,omitempty"`
	LaborMultiplier decimal.Decimal  `json:"labor_multiplier"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
