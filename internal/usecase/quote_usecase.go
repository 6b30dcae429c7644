package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
)

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteItemNotFound     = errors.New("quote item not found")
	ErrCustomerEmailRequired = errors.New("customer email is required")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrNoDefaultPricingRule  = errors.New("no default pricing rule found")
	ErrNoPricingRule         = errors.New("no pricing rule associated with quote")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrRateLimited           = errors.New("rate limit exceeded")
)

const (
	// quoteExpiry is how long a new quote stays open.
	quoteExpiry = 30 * 24 * time.Hour

	// maxUploadSize caps one media file at 50 MB.
	maxUploadSize = 50 * 1024 * 1024

	publicQuoteEndpoint = "/public/quote"
)

// allowedUploadExtensions is the media allow-list for public submissions.
var allowedUploadExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".mp4": true, ".mov": true, ".avi": true,
}

// IQuoteUseCase exposes quote operations to staff endpoints and the public
// submission widget.

type IQuoteUseCase interface {
	Create(ctx context.Context, tenantID string, cmd CreateQuoteCommand) (entities.Quote, error)
	SubmitPublic(ctx context.Context, tenantSlug, clientIP string, cmd PublicSubmissionCommand) (entities.Quote, error)
	GetPublic(ctx context.Context, tenantSlug, quoteNumber string) (entities.Quote, error)
	TenantConfig(ctx context.Context, tenantSlug string) (entities.Tenant, error)
	Get(ctx context.Context, tenantID, id string) (QuoteDetail, error)
	List(ctx context.Context, tenantID string, filter QuoteFilter) (QuotePage, error)
	Update(ctx context.Context, tenantID, id string, cmd UpdateQuoteCommand) (entities.Quote, error)
	AddItem(ctx context.Context, tenantID, quoteID string, cmd ItemCommand) (entities.LineItem, error)
	RemoveItem(ctx context.Context, tenantID, quoteID, itemID string) error
	Recalculate(ctx context.Context, tenantID, quoteID string) (entities.Quote, error)
}

// ItemCommand describes one line item to create. When CatalogItemID is set
// the catalog entry supplies name, volume and estimated labor; otherwise the
// detected name is matched against the catalog.
type ItemCommand struct {
	CatalogItemID string
	DetectedName  string
	Quantity      int
	CubicFeet     *decimal.Decimal
	LaborHours    *decimal.Decimal
	UnitPrice     *decimal.Decimal
	TotalPrice    *decimal.Decimal
}

// CreateQuoteCommand is the staff quote-creation payload.
type CreateQuoteCommand struct {
	CustomerEmail   string
	CustomerPhone   string
	CustomerName    string
	PickupAddress   string
	DeliveryAddress string
	MoveDate        *time.Time
	Notes           string
	DistanceMiles   decimal.Decimal
	Items           []ItemCommand
}

// MediaUpload is one file attached to a public submission.
type MediaUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// PublicSubmissionCommand is the widget payload: customer identity plus
// optional media files.
type PublicSubmissionCommand struct {
	CustomerEmail   string
	CustomerName    string
	CustomerPhone   string
	PickupAddress   string
	DeliveryAddress string
	MoveDate        *time.Time
	Notes           string
	Files           []MediaUpload
}

// UpdateQuoteCommand carries the mutable quote fields; nil pointers leave the
// current value untouched.
type UpdateQuoteCommand struct {
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerName    *string
	PickupAddress   *string
	DeliveryAddress *string
	MoveDate        *time.Time
	Notes           *string
	DistanceMiles   *decimal.Decimal
	Status          *entities.QuoteStatus
}

// QuoteFilter narrows and paginates quote listings.
type QuoteFilter struct {
	Status        entities.QuoteStatus
	CustomerEmail string
	Page          int
	PerPage       int
}

// QuotePage is one page of quotes.
type QuotePage struct {
	Quotes      []entities.Quote
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
}

// QuoteDetail is a quote with its line items and media attachments.
type QuoteDetail struct {
	Quote entities.Quote
	Items []entities.LineItem
	Media []entities.QuoteMedia
}

type QuoteUseCase struct {
	quotes  interfaces.IQuoteRepository
	tenants interfaces.ITenantRepository
	users   interfaces.IUserRepository
	rules   interfaces.IPricingRuleRepository
	catalog interfaces.ICatalogRepository
	numbers *QuoteNumberGenerator
	limiter *RateLimiter
	blobs   interfaces.IBlobStore
	log     *logger.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	tenants interfaces.ITenantRepository,
	users interfaces.IUserRepository,
	rules interfaces.IPricingRuleRepository,
	catalog interfaces.ICatalogRepository,
	numbers *QuoteNumberGenerator,
	limiter *RateLimiter,
	blobs interfaces.IBlobStore,
	log *logger.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:  quotes,
		tenants: tenants,
		users:   users,
		rules:   rules,
		catalog: catalog,
		numbers: numbers,
		limiter: limiter,
		blobs:   blobs,
		log:     log,
	}
}

// Create builds a staff quote against the tenant's default pricing rule,
// prices any initial items and persists everything in one write. The quote
// number comes from the atomic sequence; a residual uniqueness conflict
// retries with a fresh number, bounded by quoteNumberMaxAttempts.
func (u *QuoteUseCase) Create(ctx context.Context, tenantID string, cmd CreateQuoteCommand) (entities.Quote, error) {
	email := strings.TrimSpace(cmd.CustomerEmail)
	if email == "" {
		return entities.Quote{}, ErrCustomerEmailRequired
	}

	rule, err := u.defaultRule(ctx, tenantID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	quoteID := uuid.NewString()

	items := make([]entities.LineItem, 0, len(cmd.Items))
	for _, itemCmd := range cmd.Items {
		item, err := u.buildItem(ctx, tenantID, quoteID, itemCmd, now)
		if err != nil {
			return entities.Quote{}, err
		}
		items = append(items, item)
	}

	expiresAt := now.Add(quoteExpiry)
	quote := entities.Quote{
		ID:              quoteID,
		TenantID:        tenantID,
		Status:          entities.QuoteStatusPending,
		CustomerEmail:   email,
		CustomerPhone:   strings.TrimSpace(cmd.CustomerPhone),
		CustomerName:    strings.TrimSpace(cmd.CustomerName),
		PickupAddress:   cmd.PickupAddress,
		DeliveryAddress: cmd.DeliveryAddress,
		MoveDate:        cmd.MoveDate,
		Notes:           cmd.Notes,
		DistanceMiles:   cmd.DistanceMiles,
		PricingRuleID:   rule.ID,
		ExpiresAt:       &expiresAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	quote.Totals = PriceQuote(items, quote.DistanceMiles, rule)

	if customer, err := u.users.GetByEmail(ctx, tenantID, email); err == nil && customer.ID != "" {
		quote.CustomerID = customer.ID
	}

	return u.createNumbered(ctx, quote, items)
}

// SubmitPublic is the widget intake path: tenant by slug, rate limit, quote
// against the default rule, customer upsert and best-effort media upload.
func (u *QuoteUseCase) SubmitPublic(ctx context.Context, tenantSlug, clientIP string, cmd PublicSubmissionCommand) (entities.Quote, error) {
	tenant, err := u.tenantBySlug(ctx, tenantSlug)
	if err != nil {
		return entities.Quote{}, err
	}

	if !u.limiter.Allow(ctx, tenant.ID, clientIP, publicQuoteEndpoint, time.Now()) {
		return entities.Quote{}, ErrRateLimited
	}

	email := strings.TrimSpace(cmd.CustomerEmail)
	if email == "" {
		return entities.Quote{}, ErrCustomerEmailRequired
	}
	name := strings.TrimSpace(cmd.CustomerName)
	if name == "" {
		return entities.Quote{}, ErrCustomerNameRequired
	}

	rule, err := u.defaultRule(ctx, tenant.ID)
	if err != nil {
		return entities.Quote{}, err
	}

	customer, err := u.upsertCustomer(ctx, tenant.ID, email, name, cmd.CustomerPhone)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(quoteExpiry)
	quote := entities.Quote{
		ID:              uuid.NewString(),
		TenantID:        tenant.ID,
		CustomerID:      customer.ID,
		Status:          entities.QuoteStatusPending,
		CustomerEmail:   email,
		CustomerPhone:   strings.TrimSpace(cmd.CustomerPhone),
		CustomerName:    name,
		PickupAddress:   cmd.PickupAddress,
		DeliveryAddress: cmd.DeliveryAddress,
		MoveDate:        cmd.MoveDate,
		Notes:           cmd.Notes,
		PricingRuleID:   rule.ID,
		ExpiresAt:       &expiresAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	quote.Totals = PriceQuote(nil, quote.DistanceMiles, rule)

	created, err := u.createNumbered(ctx, quote, nil)
	if err != nil {
		return entities.Quote{}, err
	}

	u.attachUploads(ctx, created, cmd.Files)
	return created, nil
}

// GetPublic is the customer-facing status lookup by quote number. Callers
// shape the limited public field set; the full quote never leaves the staff
// surface through this path.
func (u *QuoteUseCase) GetPublic(ctx context.Context, tenantSlug, quoteNumber string) (entities.Quote, error) {
	tenant, err := u.tenantBySlug(ctx, tenantSlug)
	if err != nil {
		return entities.Quote{}, err
	}

	number := strings.TrimSpace(quoteNumber)
	if number == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	quote, err := u.quotes.GetByNumber(ctx, tenant.ID, number)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

// TenantConfig returns the tenant fields the embeddable widget may see.
func (u *QuoteUseCase) TenantConfig(ctx context.Context, tenantSlug string) (entities.Tenant, error) {
	return u.tenantBySlug(ctx, tenantSlug)
}

// tenantBySlug resolves an active tenant; unknown and inactive slugs are
// indistinguishable to public callers.
func (u *QuoteUseCase) tenantBySlug(ctx context.Context, tenantSlug string) (entities.Tenant, error) {
	slug := strings.TrimSpace(tenantSlug)
	if slug == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	tenant, err := u.tenants.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Tenant{}, err
	}
	if tenant.ID == "" || !tenant.IsActive {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return tenant, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, tenantID, id string) (QuoteDetail, error) {
	quote, err := u.getQuote(ctx, tenantID, id)
	if err != nil {
		return QuoteDetail{}, err
	}

	items, err := u.quotes.ListItems(ctx, quote.ID)
	if err != nil {
		return QuoteDetail{}, err
	}
	media, err := u.quotes.ListMedia(ctx, quote.ID)
	if err != nil {
		return QuoteDetail{}, err
	}
	return QuoteDetail{Quote: quote, Items: items, Media: media}, nil
}

func (u *QuoteUseCase) List(ctx context.Context, tenantID string, filter QuoteFilter) (QuotePage, error) {
	quotes, err := u.quotes.List(ctx, tenantID)
	if err != nil {
		return QuotePage{}, err
	}

	filtered := quotes[:0]
	emailNeedle := strings.ToLower(strings.TrimSpace(filter.CustomerEmail))
	for _, q := range quotes {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if emailNeedle != "" && !strings.Contains(strings.ToLower(q.CustomerEmail), emailNeedle) {
			continue
		}
		filtered = append(filtered, q)
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
	return QuotePage{Quotes: page, Total: total, Pages: pages, CurrentPage: current, PerPage: perPage}, nil
}

// Update applies the mutable fields and reprices the quote when it has a
// pricing rule.
func (u *QuoteUseCase) Update(ctx context.Context, tenantID, id string, cmd UpdateQuoteCommand) (entities.Quote, error) {
	quote, err := u.getQuote(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if cmd.Status != nil {
		if !entities.ValidQuoteStatus(*cmd.Status) {
			return entities.Quote{}, ErrInvalidQuoteStatus
		}
		quote.Status = *cmd.Status
	}
	if cmd.CustomerEmail != nil {
		email := strings.TrimSpace(*cmd.CustomerEmail)
		if email == "" {
			return entities.Quote{}, ErrCustomerEmailRequired
		}
		quote.CustomerEmail = email
	}
	if cmd.CustomerPhone != nil {
		quote.CustomerPhone = strings.TrimSpace(*cmd.CustomerPhone)
	}
	if cmd.CustomerName != nil {
		quote.CustomerName = strings.TrimSpace(*cmd.CustomerName)
	}
	if cmd.PickupAddress != nil {
		quote.PickupAddress = *cmd.PickupAddress
	}
	if cmd.DeliveryAddress != nil {
		quote.DeliveryAddress = *cmd.DeliveryAddress
	}
	if cmd.MoveDate != nil {
		quote.MoveDate = cmd.MoveDate
	}
	if cmd.Notes != nil {
		quote.Notes = *cmd.Notes
	}
	if cmd.DistanceMiles != nil {
		quote.DistanceMiles = *cmd.DistanceMiles
	}

	if quote.PricingRuleID != "" {
		rule, err := u.rules.GetByID(ctx, tenantID, quote.PricingRuleID)
		if err != nil {
			return entities.Quote{}, err
		}
		if rule.ID != "" {
			items, err := u.quotes.ListItems(ctx, quote.ID)
			if err != nil {
				return entities.Quote{}, err
			}
			quote.Totals = PriceQuote(items, quote.DistanceMiles, rule)
		}
	}

	quote.UpdatedAt = time.Now().UTC()
	return u.quotes.Update(ctx, quote)
}

// AddItem appends a line item and commits it together with the recomputed
// totals in one transactional write.
func (u *QuoteUseCase) AddItem(ctx context.Context, tenantID, quoteID string, cmd ItemCommand) (entities.LineItem, error) {
	quote, err := u.getQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.LineItem{}, err
	}

	item, err := u.buildItem(ctx, tenantID, quote.ID, cmd, time.Now().UTC())
	if err != nil {
		return entities.LineItem{}, err
	}

	rule, err := u.quoteRule(ctx, quote)
	if err != nil {
		return entities.LineItem{}, err
	}
	existing, err := u.quotes.ListItems(ctx, quote.ID)
	if err != nil {
		return entities.LineItem{}, err
	}

	totals := PriceQuote(append(existing, item), quote.DistanceMiles, rule)
	return u.quotes.AddLineItem(ctx, item, totals)
}

// RemoveItem deletes a line item and commits the recomputed totals in the
// same transactional write.
func (u *QuoteUseCase) RemoveItem(ctx context.Context, tenantID, quoteID, itemID string) error {
	quote, err := u.getQuote(ctx, tenantID, quoteID)
	if err != nil {
		return err
	}

	existing, err := u.quotes.ListItems(ctx, quote.ID)
	if err != nil {
		return err
	}

	remaining := make([]entities.LineItem, 0, len(existing))
	found := false
	for _, item := range existing {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return ErrQuoteItemNotFound
	}

	rule, err := u.quoteRule(ctx, quote)
	if err != nil {
		return err
	}

	totals := PriceQuote(remaining, quote.DistanceMiles, rule)
	return u.quotes.RemoveLineItem(ctx, quote.ID, itemID, totals)
}

// Recalculate reprices the quote from its current line items.
func (u *QuoteUseCase) Recalculate(ctx context.Context, tenantID, quoteID string) (entities.Quote, error) {
	quote, err := u.getQuote(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	rule, err := u.quoteRule(ctx, quote)
	if err != nil {
		return entities.Quote{}, err
	}
	items, err := u.quotes.ListItems(ctx, quote.ID)
	if err != nil {
		return entities.Quote{}, err
	}

	totals := PriceQuote(items, quote.DistanceMiles, rule)
	return u.quotes.UpdateTotals(ctx, tenantID, quote.ID, totals)
}

func (u *QuoteUseCase) getQuote(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	quote, err := u.quotes.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

func (u *QuoteUseCase) defaultRule(ctx context.Context, tenantID string) (entities.PricingRule, error) {
	rule, err := u.rules.GetDefault(ctx, tenantID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == "" {
		return entities.PricingRule{}, ErrNoDefaultPricingRule
	}
	return rule, nil
}

func (u *QuoteUseCase) quoteRule(ctx context.Context, quote entities.Quote) (entities.PricingRule, error) {
	if quote.PricingRuleID == "" {
		return entities.PricingRule{}, ErrNoPricingRule
	}
	rule, err := u.rules.GetByID(ctx, quote.TenantID, quote.PricingRuleID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	if rule.ID == "" {
		return entities.PricingRule{}, ErrNoPricingRule
	}
	return rule, nil
}

// createNumbered assigns a quote number and inserts, retrying on the
// uniqueness guard with a fresh number.
func (u *QuoteUseCase) createNumbered(ctx context.Context, quote entities.Quote, items []entities.LineItem) (entities.Quote, error) {
	var lastErr error
	for attempt := 0; attempt < quoteNumberMaxAttempts; attempt++ {
		number, err := u.numbers.Next(ctx, quote.TenantID, time.Now())
		if err != nil {
			return entities.Quote{}, err
		}
		quote.QuoteNumber = number

		created, err := u.quotes.Create(ctx, quote, items)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrQuoteNumberConflict) {
			return entities.Quote{}, err
		}
		lastErr = err
		u.log.Warn("quote number conflict, retrying",
			"tenant_id", quote.TenantID, "quote_number", number, "attempt", attempt+1)
	}
	return entities.Quote{}, fmt.Errorf("quote creation failed after %d attempts: %w", quoteNumberMaxAttempts, lastErr)
}

// buildItem turns an ItemCommand into a line item. An explicit catalog
// reference copies the entry's name and volume and estimates labor hours from
// the entry's volume and labor multiplier; otherwise a detected name is run
// through the catalog matcher.
func (u *QuoteUseCase) buildItem(ctx context.Context, tenantID, quoteID string, cmd ItemCommand, now time.Time) (entities.LineItem, error) {
	quantity := cmd.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := entities.LineItem{
		ID:           uuid.NewString(),
		QuoteID:      quoteID,
		DetectedName: strings.TrimSpace(cmd.DetectedName),
		Quantity:     quantity,
		CubicFeet:    cmd.CubicFeet,
		LaborHours:   cmd.LaborHours,
		UnitPrice:    cmd.UnitPrice,
		TotalPrice:   cmd.TotalPrice,
		CreatedAt:    now,
	}

	if cmd.CatalogItemID != "" {
		entry, err := u.catalog.GetByID(ctx, tenantID, cmd.CatalogItemID)
		if err != nil {
			return entities.LineItem{}, err
		}
		if entry.ID != "" {
			applyCatalogEntry(&item, entry.ID, entry.Name, entry.BaseCubicFeet, entry.LaborMultiplier)
		}
		return item, nil
	}

	if item.DetectedName != "" {
		catalog, err := u.catalog.ListActive(ctx, tenantID)
		if err != nil {
			return entities.LineItem{}, err
		}
		if match := MatchCatalog(item.DetectedName, catalog); match.Matched {
			applyCatalogEntry(&item, match.CatalogItemID, "", match.CubicFeet, match.LaborMultiplier)
		}
	}
	return item, nil
}

// applyCatalogEntry copies catalog-sourced pricing inputs onto a line item.
// Labor hours use the rough base_cubic_feet * labor_multiplier / 10 estimate.
func applyCatalogEntry(item *entities.LineItem, entryID, entryName string, baseCubicFeet *decimal.Decimal, laborMultiplier decimal.Decimal) {
	item.CatalogItemID = entryID
	if entryName != "" {
		item.DetectedName = entryName
	}
	if baseCubicFeet != nil {
		cf := *baseCubicFeet
		item.CubicFeet = &cf
		hours := cf.Mul(laborMultiplier).Div(decimal.NewFromInt(10))
		item.LaborHours = &hours
	}
}

func (u *QuoteUseCase) upsertCustomer(ctx context.Context, tenantID, email, name, phone string) (entities.User, error) {
	customer, err := u.users.GetByEmail(ctx, tenantID, email)
	if err != nil {
		return entities.User{}, err
	}
	if customer.ID != "" {
		return customer, nil
	}

	firstName := name
	lastName := ""
	if idx := strings.Index(name, " "); idx > 0 {
		firstName = name[:idx]
		lastName = strings.TrimSpace(name[idx+1:])
	}

	now := time.Now().UTC()
	return u.users.Create(ctx, entities.User{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     strings.TrimSpace(phone),
		Role:      entities.UserRoleCustomer,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// attachUploads stores submitted media best-effort: disallowed extensions and
// oversized files are skipped, storage failures degrade to skipping the file.
func (u *QuoteUseCase) attachUploads(ctx context.Context, quote entities.Quote, files []MediaUpload) {
	for _, file := range files {
		name := path.Base(strings.TrimSpace(file.FileName))
		if name == "" || name == "." {
			continue
		}
		if !allowedUploadExtensions[strings.ToLower(path.Ext(name))] {
			continue
		}
		if file.Size > maxUploadSize {
			u.log.Warn("skipping oversized upload", "quote_id", quote.ID, "file", name, "size", file.Size)
			continue
		}

		key := fmt.Sprintf("quotes/%s/%s", quote.ID, name)
		url, err := u.blobs.Put(ctx, key, file.ContentType, file.Content)
		if err != nil {
			u.log.Error("media upload failed", "quote_id", quote.ID, "file", name, "error", err)
			continue
		}

		media := entities.QuoteMedia{
			ID:        uuid.NewString(),
			QuoteID:   quote.ID,
			FileName:  name,
			FilePath:  url,
			FileSize:  file.Size,
			MimeType:  file.ContentType,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := u.quotes.AddMedia(ctx, media); err != nil {
			u.log.Error("media record write failed", "quote_id", quote.ID, "file", name, "error", err)
		}
	}
}
