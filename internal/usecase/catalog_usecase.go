package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrCatalogNameRequired = errors.New("catalog item name is required")
	ErrInvalidCubicFeet    = errors.New("base cubic feet must not be negative")
)

// ICatalogUseCase exposes staff catalog management.

type ICatalogUseCase interface {
	Create(ctx context.Context, tenantID string, cmd CatalogItemCommand) (entities.CatalogItem, error)
	Get(ctx context.Context, tenantID, id string) (entities.CatalogItem, error)
	List(ctx context.Context, tenantID string, filter CatalogFilter) (CatalogPage, error)
	Update(ctx context.Context, tenantID, id string, cmd CatalogItemCommand) (entities.CatalogItem, error)
	Delete(ctx context.Context, tenantID, id string) error
	Categories(ctx context.Context, tenantID string) ([]string, error)
}

// CatalogItemCommand carries the writable catalog fields. On update, nil
// optionals leave the stored value untouched.
type CatalogItemCommand struct {
	Name            string
	Aliases         []string
	Category        string
	BaseCubicFeet   *decimal.Decimal
	LaborMultiplier *decimal.Decimal
	IsActive        *bool
}

// CatalogFilter narrows and paginates catalog listings.
type CatalogFilter struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

// CatalogPage is one page of catalog items.
type CatalogPage struct {
	Items       []entities.CatalogItem
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Create(ctx context.Context, tenantID string, cmd CatalogItemCommand) (entities.CatalogItem, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.CatalogItem{}, ErrCatalogNameRequired
	}
	if cmd.BaseCubicFeet != nil && cmd.BaseCubicFeet.IsNegative() {
		return entities.CatalogItem{}, ErrInvalidCubicFeet
	}

	now := time.Now().UTC()
	item := entities.CatalogItem{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            name,
		Aliases:         normalizeAliases(cmd.Aliases),
		Category:        strings.TrimSpace(cmd.Category),
		BaseCubicFeet:   cmd.BaseCubicFeet,
		LaborMultiplier: decimal.NewFromInt(1),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if cmd.LaborMultiplier != nil && cmd.LaborMultiplier.IsPositive() {
		item.LaborMultiplier = *cmd.LaborMultiplier
	}
	if cmd.IsActive != nil {
		item.IsActive = *cmd.IsActive
	}
	return u.repo.Create(ctx, item)
}

func (u *CatalogUseCase) Get(ctx context.Context, tenantID, id string) (entities.CatalogItem, error) {
	if strings.TrimSpace(id) == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	item, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) List(ctx context.Context, tenantID string, filter CatalogFilter) (CatalogPage, error) {
	items, err := u.repo.List(ctx, tenantID)
	if err != nil {
		return CatalogPage{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)
	filtered := items[:0]
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		filtered = append(filtered, item)
	}

	page, total, pages := paginate(filtered, filter.Page, filter.PerPage)
	current := filter.Page
	if current < 1 {
		current = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	return CatalogPage{Items: page, Total: total, Pages: pages, CurrentPage: current, PerPage: perPage}, nil
}

func (u *CatalogUseCase) Update(ctx context.Context, tenantID, id string, cmd CatalogItemCommand) (entities.CatalogItem, error) {
	item, err := u.Get(ctx, tenantID, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}

	if name := strings.TrimSpace(cmd.Name); name != "" {
		item.Name = name
	}
	if cmd.Aliases != nil {
		item.Aliases = normalizeAliases(cmd.Aliases)
	}
	if category := strings.TrimSpace(cmd.Category); category != "" {
		item.Category = category
	}
	if cmd.BaseCubicFeet != nil {
		if cmd.BaseCubicFeet.IsNegative() {
			return entities.CatalogItem{}, ErrInvalidCubicFeet
		}
		item.BaseCubicFeet = cmd.BaseCubicFeet
	}
	if cmd.LaborMultiplier != nil && cmd.LaborMultiplier.IsPositive() {
		item.LaborMultiplier = *cmd.LaborMultiplier
	}
	if cmd.IsActive != nil {
		item.IsActive = *cmd.IsActive
	}
	item.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, item)
}

// Delete removes the catalog item. Line items keep only a weak reference, so
// deletion never cascades into quotes.
func (u *CatalogUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, tenantID, id)
}

func (u *CatalogUseCase) Categories(ctx context.Context, tenantID string) ([]string, error) {
	items, err := u.repo.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func normalizeAliases(aliases []string) []string {
	out := make([]string, 0, len(aliases))
	seen := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" || seen[strings.ToLower(alias)] {
			continue
		}
		seen[strings.ToLower(alias)] = true
		out = append(out, alias)
	}
	return out
}
