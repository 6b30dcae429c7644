package response

import (
	"time"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
)

type PricingRuleResponse struct {
	ID                  string          `json:"id"`
	TenantID            string          `json:"tenant_id"`
	Name                string          `json:"name"`
	RatePerCubicFoot    decimal.Decimal `json:"rate_per_cubic_foot"`
	LaborRatePerHour    decimal.Decimal `json:"labor_rate_per_hour"`
	MinimumCharge       decimal.Decimal `json:"minimum_charge"`
	DistanceRatePerMile decimal.Decimal `json:"distance_rate_per_mile"`
	IsDefault           bool            `json:"is_default"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func FromPricingRule(rule entities.PricingRule) PricingRuleResponse {
	return PricingRuleResponse{
		ID:                  rule.ID,
		TenantID:            rule.TenantID,
		Name:                rule.Name,
		RatePerCubicFoot:    rule.RatePerCubicFoot,
		LaborRatePerHour:    rule.LaborRatePerHour,
		MinimumCharge:       rule.MinimumCharge,
		DistanceRatePerMile: rule.DistanceRatePerMile,
		IsDefault:           rule.IsDefault,
		IsActive:            rule.IsActive,
		CreatedAt:           rule.CreatedAt,
		UpdatedAt:           rule.UpdatedAt,
	}
}

type PricingRuleListResponse struct {
	Rules []PricingRuleResponse `json:"rules"`
}

func FromPricingRules(rules []entities.PricingRule) PricingRuleListResponse {
	out := make([]PricingRuleResponse, 0, len(rules))
	for _, rule := range rules {
		out = append(out, FromPricingRule(rule))
	}
	return PricingRuleListResponse{Rules: out}
}
