package interfaces

import (
	"context"

	"movequote/internal/domain/entities"
)

// IPricingRuleRepository abstracts DynamoDB persistence for PricingRule.
//
// SetDefault is the atomic primitive behind the one-default-per-tenant
// invariant: it clears the previous default and marks the new one in a single
// transactional write, so no interleaving can observe two defaults.

type IPricingRuleRepository interface {
	Create(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.PricingRule, error)
	GetDefault(ctx context.Context, tenantID string) (entities.PricingRule, error)
	List(ctx context.Context, tenantID string) ([]entities.PricingRule, error)
	Update(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error)
	SetDefault(ctx context.Context, tenantID, id string) (entities.PricingRule, error)
	Delete(ctx context.Context, tenantID, id string) error
}
