package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
)

var (
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	ErrRuleNameRequired    = errors.New("pricing rule name is required")
	ErrInvalidRate         = errors.New("pricing rates must not be negative")
)

// IPricingRuleUseCase exposes staff pricing-rule management.

type IPricingRuleUseCase interface {
	Create(ctx context.Context, tenantID string, cmd PricingRuleCommand) (entities.PricingRule, error)
	Get(ctx context.Context, tenantID, id string) (entities.PricingRule, error)
	List(ctx context.Context, tenantID string) ([]entities.PricingRule, error)
	Update(ctx context.Context, tenantID, id string, cmd PricingRuleCommand) (entities.PricingRule, error)
	SetDefault(ctx context.Context, tenantID, id string) (entities.PricingRule, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// PricingRuleCommand carries the writable rule fields. On update, nil
// optionals leave the stored value untouched.
type PricingRuleCommand struct {
	Name                string
	RatePerCubicFoot    *decimal.Decimal
	LaborRatePerHour    *decimal.Decimal
	MinimumCharge       *decimal.Decimal
	DistanceRatePerMile *decimal.Decimal
	IsDefault           *bool
	IsActive            *bool
}

type PricingRuleUseCase struct {
	repo interfaces.IPricingRuleRepository
}

var _ IPricingRuleUseCase = (*PricingRuleUseCase)(nil)

func NewPricingRuleUseCase(repo interfaces.IPricingRuleRepository) *PricingRuleUseCase {
	return &PricingRuleUseCase{repo: repo}
}

func (u *PricingRuleUseCase) Create(ctx context.Context, tenantID string, cmd PricingRuleCommand) (entities.PricingRule, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.PricingRule{}, ErrRuleNameRequired
	}
	if anyNegative(cmd.RatePerCubicFoot, cmd.LaborRatePerHour, cmd.MinimumCharge, cmd.DistanceRatePerMile) {
		return entities.PricingRule{}, ErrInvalidRate
	}

	now := time.Now().UTC()
	rule := entities.PricingRule{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assignRate(&rule.RatePerCubicFoot, cmd.RatePerCubicFoot)
	assignRate(&rule.LaborRatePerHour, cmd.LaborRatePerHour)
	assignRate(&rule.MinimumCharge, cmd.MinimumCharge)
	assignRate(&rule.DistanceRatePerMile, cmd.DistanceRatePerMile)
	if cmd.IsActive != nil {
		rule.IsActive = *cmd.IsActive
	}

	created, err := u.repo.Create(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}

	// The default swap is the repository's atomic primitive: it clears the
	// previous default in the same transaction.
	if cmd.IsDefault != nil && *cmd.IsDefault {
		return u.repo.SetDefault(ctx, tenantID, created.ID)
	}
	return created, nil
}

func (u *PricingRuleUseCase) Get(ctx context.Context, tenantID, id string) (entities.PricingRule, error) {
	if strings.TrimSpace(id) == "" {
		return entities.PricingRule{}, ErrPricingRuleNotFound
	}
	rule, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == "" {
		return entities.PricingRule{}, ErrPricingRuleNotFound
	}
	return rule, nil
}

// List returns the tenant's rules with the default first.
func (u *PricingRuleUseCase) List(ctx context.Context, tenantID string) ([]entities.PricingRule, error) {
	rules, err := u.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	ordered := make([]entities.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsDefault {
			ordered = append(ordered, rule)
		}
	}
	for _, rule := range rules {
		if !rule.IsDefault {
			ordered = append(ordered, rule)
		}
	}
	return ordered, nil
}

func (u *PricingRuleUseCase) Update(ctx context.Context, tenantID, id string, cmd PricingRuleCommand) (entities.PricingRule, error) {
	rule, err := u.Get(ctx, tenantID, id)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if anyNegative(cmd.RatePerCubicFoot, cmd.LaborRatePerHour, cmd.MinimumCharge, cmd.DistanceRatePerMile) {
		return entities.PricingRule{}, ErrInvalidRate
	}

	if name := strings.TrimSpace(cmd.Name); name != "" {
		rule.Name = name
	}
	assignRate(&rule.RatePerCubicFoot, cmd.RatePerCubicFoot)
	assignRate(&rule.LaborRatePerHour, cmd.LaborRatePerHour)
	assignRate(&rule.MinimumCharge, cmd.MinimumCharge)
	assignRate(&rule.DistanceRatePerMile, cmd.DistanceRatePerMile)
	if cmd.IsActive != nil {
		rule.IsActive = *cmd.IsActive
	}
	rule.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, rule)
	if err != nil {
		return entities.PricingRule{}, err
	}

	if cmd.IsDefault != nil && *cmd.IsDefault && !updated.IsDefault {
		return u.repo.SetDefault(ctx, tenantID, updated.ID)
	}
	return updated, nil
}

func (u *PricingRuleUseCase) SetDefault(ctx context.Context, tenantID, id string) (entities.PricingRule, error) {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return entities.PricingRule{}, err
	}
	return u.repo.SetDefault(ctx, tenantID, id)
}

func (u *PricingRuleUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, tenantID, id)
}

func assignRate(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

func anyNegative(values ...*decimal.Decimal) bool {
	for _, v := range values {
		if v != nil && v.IsNegative() {
			return true
		}
	}
	return false
}
