package request

import "movequote/internal/usecase"

// CreatePricingRuleRequest is the staff rule-creation payload.
type CreatePricingRuleRequest struct {
	Name                string   `json:"name" binding:"required"`
	RatePerCubicFoot    *float64 `json:"rate_per_cubic_foot"`
	LaborRatePerHour    *float64 `json:"labor_rate_per_hour"`
	MinimumCharge       *float64 `json:"minimum_charge"`
	DistanceRatePerMile *float64 `json:"distance_rate_per_mile"`
	IsDefault           *bool    `json:"is_default"`
	IsActive            *bool    `json:"is_active"`
}

func (r CreatePricingRuleRequest) ToCommand() usecase.PricingRuleCommand {
	return usecase.PricingRuleCommand{
		Name:                r.Name,
		RatePerCubicFoot:    decimalPtr(r.RatePerCubicFoot),
		LaborRatePerHour:    decimalPtr(r.LaborRatePerHour),
		MinimumCharge:       decimalPtr(r.MinimumCharge),
		DistanceRatePerMile: decimalPtr(r.DistanceRatePerMile),
		IsDefault:           r.IsDefault,
		IsActive:            r.IsActive,
	}
}

// UpdatePricingRuleRequest mirrors the create shape without required fields.
type UpdatePricingRuleRequest struct {
	Name                string   `json:"name"`
	RatePerCubicFoot    *float64 `json:"rate_per_cubic_foot"`
	LaborRatePerHour    *float64 `json:"labor_rate_per_hour"`
	MinimumCharge       *float64 `json:"minimum_charge"`
	DistanceRatePerMile *float64 `json:"distance_rate_per_mile"`
	IsDefault           *bool    `json:"is_default"`
	IsActive            *bool    `json:"is_active"`
}

func (r UpdatePricingRuleRequest) ToCommand() usecase.PricingRuleCommand {
	return usecase.PricingRuleCommand{
		Name:                r.Name,
		RatePerCubicFoot:    decimalPtr(r.RatePerCubicFoot),
		LaborRatePerHour:    decimalPtr(r.LaborRatePerHour),
		MinimumCharge:       decimalPtr(r.MinimumCharge),
		DistanceRatePerMile: decimalPtr(r.DistanceRatePerMile),
		IsDefault:           r.IsDefault,
		IsActive:            r.IsActive,
	}
}
