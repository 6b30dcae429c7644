package interfaces

import (
	"context"

	"movequote/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Public quote submissions upsert the customer by (tenant, email); the auth
// middleware resolves session identities to users by id.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.User, error)
	GetByEmail(ctx context.Context, tenantID, email string) (entities.User, error)
}
