package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// ValidQuoteStatus reports whether s is one of the known quote statuses.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// QuoteTotals are the derived aggregates of a quote. They are always a pure
// function of the quote's line items, its pricing rule and its distance, and
// are never edited directly.
type QuoteTotals struct {
	TotalCubicFeet  decimal.Decimal `json:"total_cubic_feet"`
	TotalLaborHours decimal.Decimal `json:"total_labor_hours"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// Quote is the tenant-owned aggregate root for a moving estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id, sorted by created_at
//
// QuoteNumber is unique within a tenant (not globally) and monotonically
// increasing within a calendar month.
type Quote struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	CustomerID      string          `json:"customer_id,omitempty"`
	QuoteNumber     string          `json:"quote_number"`
	Status          QuoteStatus     `json:"status"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	PickupAddress   string          `json:"pickup_address,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	MoveDate        *time.Time      `json:"move_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	DistanceMiles   decimal.Decimal `json:"distance_miles"`
	Totals          QuoteTotals     `json:"totals"`
	PricingRuleID   string          `json:"pricing_rule_id,omitempty"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LineItem is one priced entry within a quote, optionally backed by a catalog
// item. CatalogItemID is a weak reference: lookup only, no ownership.
//
// Optional numeric fields are nil when not present; absence is distinct from
// zero (a nil CubicFeet contributes nothing to the total, a zero one does too
// but was measured).
type LineItem struct {
	ID            string           `json:"id"`
	QuoteID       string           `json:"quote_id"`
	CatalogItemID string           `json:"catalog_item_id,omitempty"`
	DetectedName  string           `json:"detected_name,omitempty"`
	Quantity      int              `json:"quantity"`
	CubicFeet     *decimal.Decimal `json:"cubic_feet,omitempty"`
	LaborHours    *decimal.Decimal `json:"labor_hours,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty"`
	Confidence    *decimal.Decimal `json:"confidence_score,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// QuoteMedia is a photo or video attached to a quote, referenced by detection
// jobs through its id.
type QuoteMedia struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size,omitempty"`
	MimeType    string    `json:"mime_type,omitempty"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
}
