package interfaces

import (
	"context"

	"movequote/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogItem.
//
// List results are ordered by created_at then id so the catalog matcher scans
// entries in a stable insertion order; identical (label, catalog) input must
// always yield the identical match.

type ICatalogRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.CatalogItem, error)
	List(ctx context.Context, tenantID string) ([]entities.CatalogItem, error)
	ListActive(ctx context.Context, tenantID string) ([]entities.CatalogItem, error)
	Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, tenantID, id string) error
}
