package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrLimitExceeded is returned by IncrementWindow when the counter is already
// at the limit. It is the only IncrementWindow error that denies a request;
// every other error fails open.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// ICounterStore is the atomic keyed counter primitive shared by the quote
// sequence generator and the rate limiter. Both counters are contended by
// concurrent requests across processes, so the store must implement
// upsert-and-increment as a single atomic operation, never a read/compare/
// write pair.

type ICounterStore interface {
	// NextSequence atomically increments and returns the per-(tenant, period)
	// sequence counter, creating it at 1 when absent. period is a yyyymm key,
	// so the sequence restarts each calendar month.
	NextSequence(ctx context.Context, tenantID, period string) (int64, error)

	// IncrementWindow atomically increments the fixed-window request counter
	// for (tenant, ip, endpoint, windowStart) and returns the new count, or
	// ErrLimitExceeded when the counter already reached max.
	IncrementWindow(ctx context.Context, tenantID, ip, endpoint string, windowStart time.Time, max int) (int, error)

	// PurgeExpired deletes counter rows whose window started before the
	// cutoff. Invoked by an external scheduler, never on the request path.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)
}
