package response

import (
	"time"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
)

type QuoteResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	CustomerID      string          `json:"customer_id,omitempty"`
	QuoteNumber     string          `json:"quote_number"`
	Status          string          `json:"status"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	PickupAddress   string          `json:"pickup_address,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	MoveDate        *time.Time      `json:"move_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	DistanceMiles   decimal.Decimal `json:"distance_miles"`
	TotalCubicFeet  decimal.Decimal `json:"total_cubic_feet"`
	TotalLaborHours decimal.Decimal `json:"total_labor_hours"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PricingRuleID   string          `json:"pricing_rule_id,omitempty"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		TenantID:        q.TenantID,
		CustomerID:      q.CustomerID,
		QuoteNumber:     q.QuoteNumber,
		Status:          string(q.Status),
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		CustomerName:    q.CustomerName,
		PickupAddress:   q.PickupAddress,
		DeliveryAddress: q.DeliveryAddress,
		MoveDate:        q.MoveDate,
		Notes:           q.Notes,
		DistanceMiles:   q.DistanceMiles,
		TotalCubicFeet:  q.Totals.TotalCubicFeet,
		TotalLaborHours: q.Totals.TotalLaborHours,
		Subtotal:        q.Totals.Subtotal,
		TaxAmount:       q.Totals.TaxAmount,
		TotalAmount:     q.Totals.TotalAmount,
		PricingRuleID:   q.PricingRuleID,
		ExpiresAt:       q.ExpiresAt,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

type LineItemResponse struct {
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

func FromLineItem(item entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:            item.ID,
		QuoteID:       item.QuoteID,
		CatalogItemID: item.CatalogItemID,
		DetectedName:  item.DetectedName,
		Quantity:      item.Quantity,
		CubicFeet:     item.CubicFeet,
		LaborHours:    item.LaborHours,
		UnitPrice:     item.UnitPrice,
		TotalPrice:    item.TotalPrice,
		Confidence:    item.Confidence,
		CreatedAt:     item.CreatedAt,
	}
}

type QuoteMediaResponse struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size,omitempty"`
	MimeType    string    `json:"mime_type,omitempty"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromQuoteMedia(m entities.QuoteMedia) QuoteMediaResponse {
	return QuoteMediaResponse{
		ID:          m.ID,
		QuoteID:     m.QuoteID,
		FileName:    m.FileName,
		FilePath:    m.FilePath,
		FileSize:    m.FileSize,
		MimeType:    m.MimeType,
		IsProcessed: m.IsProcessed,
		CreatedAt:   m.CreatedAt,
	}
}

type QuoteDetailResponse struct {
	QuoteResponse
	Items []LineItemResponse   `json:"items"`
	Media []QuoteMediaResponse `json:"media"`
}

func FromQuoteDetail(detail usecase.QuoteDetail) QuoteDetailResponse {
	items := make([]LineItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, FromLineItem(item))
	}
	media := make([]QuoteMediaResponse, 0, len(detail.Media))
	for _, m := range detail.Media {
		media = append(media, FromQuoteMedia(m))
	}
	return QuoteDetailResponse{
		QuoteResponse: FromQuote(detail.Quote),
		Items:         items,
		Media:         media,
	}
}

type QuoteListResponse struct {
	Quotes     []QuoteResponse `json:"quotes"`
	Pagination Pagination      `json:"pagination"`
}

func FromQuotePage(page usecase.QuotePage) QuoteListResponse {
	quotes := make([]QuoteResponse, 0, len(page.Quotes))
	for _, q := range page.Quotes {
		quotes = append(quotes, FromQuote(q))
	}
	return QuoteListResponse{
		Quotes: quotes,
		Pagination: Pagination{
			Total:       page.Total,
			Pages:       page.Pages,
			CurrentPage: page.CurrentPage,
			PerPage:     page.PerPage,
		},
	}
}
