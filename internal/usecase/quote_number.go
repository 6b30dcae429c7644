package usecase

import (
	"context"
	"fmt"
	"time"

	"movequote/internal/usecase/interfaces"
)

// quoteNumberMaxAttempts bounds retries when the quote-number uniqueness
// guard still rejects an insert. The counter makes this effectively
// unreachable, but a violation must surface as a retry, never a skipped or
// duplicated number.
const quoteNumberMaxAttempts = 3

// QuoteNumberGenerator produces tenant-scoped human-readable quote numbers of
// the form Q<year><2-digit month><4-digit sequence>, e.g. Q2026080042.
//
// The sequence is a dedicated per-tenant-per-month atomic counter, not a
// scan-then-format over existing quotes: two concurrent creations in the same
// tenant and month must never receive the same number.
type QuoteNumberGenerator struct {
	counters interfaces.ICounterStore
}

func NewQuoteNumberGenerator(counters interfaces.ICounterStore) *QuoteNumberGenerator {
	return &QuoteNumberGenerator{counters: counters}
}

// Next returns the next quote number for the tenant at the given time. The
// counter restarts at 1 at the start of each calendar month.
func (g *QuoteNumberGenerator) Next(ctx context.Context, tenantID string, now time.Time) (string, error) {
	period := now.UTC().Format("200601")
	seq, err := g.counters.NextSequence(ctx, tenantID, period)
	if err != nil {
		return "", fmt.Errorf("next quote sequence: %w", err)
	}
	return fmt.Sprintf("Q%s%04d", period, seq), nil
}
