package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRule is a tenant's formula for converting volume/labor/distance into
// cost. At most one rule per tenant is the default at any time; the write path
// clears the previous default atomically when a new one is set.
//
// MinimumCharge is a floor: it never reduces a higher computed subtotal.
type PricingRule struct {
	ID                  string          `json:"id"`
	TenantID            string          `json:"tenant_id"`
	Name                string          `json:"name"`
	RatePerCubicFoot    decimal.Decimal `json:"rate_per_cubic_foot"`
	LaborRatePerHour    decimal.Decimal `json:"labor_rate_per_hour"`
	MinimumCharge       decimal.Decimal `json:"minimum_charge"`
	DistanceRatePerMile decimal.Decimal `json:"distance_rate_per_mile"`
	IsDefault           bool            `json:"is_default"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
