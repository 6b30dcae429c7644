package usecase

import (
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
)

// defaultTaxRate is the documented default (8.5%). Deployments override it
// with the TAX_RATE env var.
const defaultTaxRate = "0.085"

var (
	taxRateOnce sync.Once
	taxRate     decimal.Decimal
)

// TaxRate returns the configured tax rate, read once from TAX_RATE.
func TaxRate() decimal.Decimal {
	taxRateOnce.Do(func() {
		raw := os.Getenv("TAX_RATE")
		if raw == "" {
			raw = defaultTaxRate
		}
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			parsed = decimal.RequireFromString(defaultTaxRate)
		}
		taxRate = parsed
	})
	return taxRate
}

// PriceQuote recomputes a quote's aggregate totals from its line items, its
// distance in miles and a pricing rule.
//
// Pure and idempotent: no hidden accumulation, same inputs always yield the
// same totals. The minimum charge is a floor; it never reduces a higher
// computed subtotal. The caller commits the returned totals atomically with
// whatever line-item change triggered the recalculation.
func PriceQuote(items []entities.LineItem, distanceMiles decimal.Decimal, rule entities.PricingRule) entities.QuoteTotals {
	totalCubicFeet := decimal.Zero
	totalLaborHours := decimal.Zero

	for _, item := range items {
		quantity := decimal.NewFromInt(int64(item.Quantity))
		if item.CubicFeet != nil {
			totalCubicFeet = totalCubicFeet.Add(item.CubicFeet.Mul(quantity))
		}
		if item.LaborHours != nil {
			totalLaborHours = totalLaborHours.Add(item.LaborHours.Mul(quantity))
		}
	}

	cubicCost := totalCubicFeet.Mul(rule.RatePerCubicFoot)
	laborCost := totalLaborHours.Mul(rule.LaborRatePerHour)

	distanceCost := decimal.Zero
	if distanceMiles.IsPositive() && rule.DistanceRatePerMile.IsPositive() {
		distanceCost = distanceMiles.Mul(rule.DistanceRatePerMile)
	}

	subtotal := cubicCost.Add(laborCost).Add(distanceCost)
	if subtotal.LessThan(rule.MinimumCharge) {
		subtotal = rule.MinimumCharge
	}

	tax := subtotal.Mul(TaxRate())

	return entities.QuoteTotals{
		TotalCubicFeet:  totalCubicFeet,
		TotalLaborHours: totalLaborHours,
		Subtotal:        subtotal,
		TaxAmount:       tax,
		TotalAmount:     subtotal.Add(tax),
	}
}
