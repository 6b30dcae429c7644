package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Timestamps are stored as RFC3339Nano strings; lexicographic order matches
// chronological order, which the tenant_id-index relies on for range sorting.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// Money and volume values are stored as decimal strings, never as DynamoDB
// numbers, so no precision is lost on the round trip.

func parseDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func parseDecimalPtr(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := parseDecimal(s)
	return &d
}

func decimalPtrString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
