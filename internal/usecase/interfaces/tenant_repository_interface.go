package interfaces

import (
	"context"

	"movequote/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
//
// Lookup by slug serves the public widget endpoints; everything else receives
// the tenant through the request context.

type ITenantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (entities.Tenant, error)
}
