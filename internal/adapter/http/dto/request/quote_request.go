package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase"
)

var (
	ErrInvalidMoveDate = errors.New("invalid move date")
)

const moveDateLayout = "2006-01-02"

// QuoteItemRequest is one line item on a quote payload. Either a catalog
// reference or a detected name drives catalog resolution; explicit numbers
// override catalog-derived ones.
type QuoteItemRequest struct {
	CatalogItemID string   `json:"catalog_item_id"`
	DetectedName  string   `json:"detected_name"`
	Quantity      int      `json:"quantity"`
	CubicFeet     *float64 `json:"cubic_feet"`
	LaborHours    *float64 `json:"labor_hours"`
	UnitPrice     *float64 `json:"unit_price"`
	TotalPrice    *float64 `json:"total_price"`
}

func (r QuoteItemRequest) ToCommand() usecase.ItemCommand {
	return usecase.ItemCommand{
		CatalogItemID: r.CatalogItemID,
		DetectedName:  r.DetectedName,
		Quantity:      r.Quantity,
		CubicFeet:     decimalPtr(r.CubicFeet),
		LaborHours:    decimalPtr(r.LaborHours),
		UnitPrice:     decimalPtr(r.UnitPrice),
		TotalPrice:    decimalPtr(r.TotalPrice),
	}
}

// CreateQuoteRequest is the staff quote-creation payload.
type CreateQuoteRequest struct {
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerName    string             `json:"customer_name"`
	PickupAddress   string             `json:"pickup_address"`
	DeliveryAddress string             `json:"delivery_address"`
	MoveDate        string             `json:"move_date"`
	Notes           string             `json:"notes"`
	DistanceMiles   float64            `json:"distance_miles"`
	Items           []QuoteItemRequest `json:"items"`
}

func (r CreateQuoteRequest) ToCommand() (usecase.CreateQuoteCommand, error) {
	moveDate, err := resolveMoveDate(r.MoveDate)
	if err != nil {
		return usecase.CreateQuoteCommand{}, err
	}

	items := make([]usecase.ItemCommand, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.ToCommand())
	}

	return usecase.CreateQuoteCommand{
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerName:    r.CustomerName,
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		MoveDate:        moveDate,
		Notes:           r.Notes,
		DistanceMiles:   decimal.NewFromFloat(r.DistanceMiles),
		Items:           items,
	}, nil
}

// UpdateQuoteRequest carries the mutable quote fields; absent fields leave
// the stored value untouched.
type UpdateQuoteRequest struct {
	CustomerEmail   *string  `json:"customer_email"`
	CustomerPhone   *string  `json:"customer_phone"`
	CustomerName    *string  `json:"customer_name"`
	PickupAddress   *string  `json:"pickup_address"`
	DeliveryAddress *string  `json:"delivery_address"`
	MoveDate        *string  `json:"move_date"`
	Notes           *string  `json:"notes"`
	DistanceMiles   *float64 `json:"distance_miles"`
	Status          *string  `json:"status"`
}

func (r UpdateQuoteRequest) ToCommand() (usecase.UpdateQuoteCommand, error) {
	cmd := usecase.UpdateQuoteCommand{
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerName:    r.CustomerName,
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		Notes:           r.Notes,
		DistanceMiles:   decimalPtr(r.DistanceMiles),
	}
	if r.MoveDate != nil {
		moveDate, err := resolveMoveDate(*r.MoveDate)
		if err != nil {
			return usecase.UpdateQuoteCommand{}, err
		}
		cmd.MoveDate = moveDate
	}
	if r.Status != nil {
		status := entities.QuoteStatus(*r.Status)
		cmd.Status = &status
	}
	return cmd, nil
}

func resolveMoveDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(moveDateLayout, raw)
	if err != nil {
		return nil, ErrInvalidMoveDate
	}
	return &parsed, nil
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
