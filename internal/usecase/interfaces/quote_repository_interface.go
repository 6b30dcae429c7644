package interfaces

import (
	"context"
	"errors"

	"movequote/internal/domain/entities"
)

// ErrQuoteNumberConflict is returned by Create when the quote-number
// uniqueness guard rejects the write. The caller retries with a freshly
// generated number, bounded by a small attempt count.
var ErrQuoteNumberConflict = errors.New("quote number already taken")

// IQuoteRepository abstracts DynamoDB persistence for the Quote aggregate
// (quote, line items, media).
//
// Write-path invariants:
//   - Create puts the quote together with a (tenant_id, quote_number)
//     uniqueness guard in one transaction.
//   - AddLineItem/AddLineItems/RemoveLineItem write the item mutation and the
//     recomputed quote totals in one transaction, so a reader never observes
//     totals computed against a partial line-item set.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote, items []entities.LineItem) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, tenantID, quoteNumber string) (entities.Quote, error)
	List(ctx context.Context, tenantID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateTotals(ctx context.Context, tenantID, id string, totals entities.QuoteTotals) (entities.Quote, error)

	ListItems(ctx context.Context, quoteID string) ([]entities.LineItem, error)
	AddLineItem(ctx context.Context, item entities.LineItem, totals entities.QuoteTotals) (entities.LineItem, error)
	AddLineItems(ctx context.Context, quoteID string, items []entities.LineItem, totals entities.QuoteTotals) error
	RemoveLineItem(ctx context.Context, quoteID, itemID string, totals entities.QuoteTotals) error

	AddMedia(ctx context.Context, m entities.QuoteMedia) (entities.QuoteMedia, error)
	ListMedia(ctx context.Context, quoteID string) ([]entities.QuoteMedia, error)
}
