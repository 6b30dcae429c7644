package usecase

import (
	"context"
	"errors"
	"net/netip"
	"os"
	"strconv"
	"time"

	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
)

const (
	// rateLimitDefaultMaxRequests is the per-window cap; override with
	// RATE_LIMIT_MAX_REQUESTS.
	rateLimitDefaultMaxRequests = 100

	// rateLimitRetention is how long counter rows are kept before purge.
	rateLimitRetention = 24 * time.Hour
)

// RateLimiter throttles public-facing endpoints with a fixed 1-hour window
// keyed by (tenant, client IP, endpoint). Counters are best-effort
// protection, not a security boundary: any internal failure fails open.
type RateLimiter struct {
	counters    interfaces.ICounterStore
	log         *logger.Logger
	maxRequests int
}

func NewRateLimiter(counters interfaces.ICounterStore, log *logger.Logger) *RateLimiter {
	max := rateLimitDefaultMaxRequests
	if raw := os.Getenv("RATE_LIMIT_MAX_REQUESTS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			max = parsed
		}
	}
	return &RateLimiter{counters: counters, log: log, maxRequests: max}
}

// Allow reports whether the request identified by (tenant, ip, endpoint) is
// admitted for the window containing now. The underlying store performs the
// increment-then-check atomically, so concurrent requests cannot both slip
// past the limit.
func (l *RateLimiter) Allow(ctx context.Context, tenantID, ip, endpoint string, now time.Time) bool {
	windowStart := now.UTC().Truncate(time.Hour)
	normalizedIP := normalizeIP(ip)

	_, err := l.counters.IncrementWindow(ctx, tenantID, normalizedIP, endpoint, windowStart, l.maxRequests)
	if err != nil {
		if errors.Is(err, interfaces.ErrLimitExceeded) {
			return false
		}
		// Fail open: the limiter must never block legitimate traffic on its
		// own failures.
		l.log.Warn("rate limiter failing open",
			"tenant_id", tenantID, "endpoint", endpoint, "error", err)
		return true
	}
	return true
}

// PurgeExpired removes counters older than the retention horizon. Called by
// an external scheduler, never on the request path.
func (l *RateLimiter) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	return l.counters.PurgeExpired(ctx, now.UTC().Add(-rateLimitRetention))
}

// normalizeIP canonicalizes the client address; unparseable input is kept
// verbatim rather than rejected (malformed IPs must not break the limiter).
func normalizeIP(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return ip
	}
	return addr.String()
}
