package response

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
)

// PublicQuoteResponse is the limited field set a customer sees when checking
// a quote by number. Internal ids never appear on the public surface.
type PublicQuoteResponse struct {
	QuoteNumber     string          `json:"quote_number"`
	Status          string          `json:"status"`
	CustomerName    string          `json:"customer_name,omitempty"`
	MoveDate        *time.Time      `json:"move_date,omitempty"`
	PickupAddress   string          `json:"pickup_address,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromPublicQuote(q entities.Quote) PublicQuoteResponse {
	return PublicQuoteResponse{
		QuoteNumber:     q.QuoteNumber,
		Status:          string(q.Status),
		CustomerName:    q.CustomerName,
		MoveDate:        q.MoveDate,
		PickupAddress:   q.PickupAddress,
		DeliveryAddress: q.DeliveryAddress,
		TotalAmount:     q.Totals.TotalAmount,
		ExpiresAt:       q.ExpiresAt,
		CreatedAt:       q.CreatedAt,
	}
}

// TenantConfigResponse is the widget bootstrap payload.
type TenantConfigResponse struct {
	TenantSlug string                 `json:"tenant_slug"`
	TenantName string                 `json:"tenant_name"`
	LogoURL    string                 `json:"logo_url,omitempty"`
	Settings   TenantSettingsResponse `json:"settings"`
}

type TenantSettingsResponse struct {
	AllowCustomerLogin bool `json:"allow_customer_login"`
	MaxFileUploads     int  `json:"max_file_uploads"`
	MaxFileSizeMB      int  `json:"max_file_size_mb"`
}

func FromTenantConfig(t entities.Tenant) TenantConfigResponse {
	return TenantConfigResponse{
		TenantSlug: t.Slug,
		TenantName: t.Name,
		LogoURL:    t.LogoURL,
		Settings: TenantSettingsResponse{
			AllowCustomerLogin: settingBool(t.Settings, "allow_customer_login", false),
			MaxFileUploads:     settingInt(t.Settings, "max_file_uploads", 5),
			MaxFileSizeMB:      settingInt(t.Settings, "max_file_size_mb", 50),
		},
	}
}

func settingBool(settings map[string]string, key string, def bool) bool {
	if raw, ok := settings[key]; ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return def
}

func settingInt(settings map[string]string, key string, def int) int {
	if raw, ok := settings[key]; ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return def
}
