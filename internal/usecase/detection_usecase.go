package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
)

var (
	ErrJobNotFound        = errors.New("detection job not found")
	ErrPromptRequired     = errors.New("detection prompt is required")
	ErrNoMediaFiles       = errors.New("no media files found for quote")
	ErrJobAlreadyTerminal = errors.New("detection job already completed or failed")
)

// Auto-add confidence thresholds. The fully-automatic path uses a stricter
// bar because no human-supplied prompt corroborates relevance.
const (
	autoAddThresholdText = 0.7
	autoAddThresholdAuto = 0.8
)

// IDetectionUseCase drives detection jobs through their lifecycle and exposes
// job lookups to staff endpoints.

type IDetectionUseCase interface {
	DetectText(ctx context.Context, tenantID string, cmd TextDetectionCommand) (entities.DetectionJob, error)
	DetectAuto(ctx context.Context, tenantID, quoteID string) (entities.DetectionJob, error)
	GetJob(ctx context.Context, tenantID, jobID string) (entities.DetectionJob, error)
	ListJobs(ctx context.Context, tenantID string, filter JobFilter) (JobPage, error)
}

// TextDetectionCommand starts a prompt-driven detection run.
type TextDetectionCommand struct {
	QuoteID      string
	Prompt       string
	AutoAddItems bool
}

// JobFilter narrows and paginates job listings.
type JobFilter struct {
	Status  entities.DetectionJobStatus
	Page    int
	PerPage int
}

// JobPage is one page of detection jobs.
type JobPage struct {
	Jobs        []entities.DetectionJob
	Total       int
	Pages       int
	CurrentPage int
	PerPage     int
}

type DetectionUseCase struct {
	jobs    interfaces.IDetectionJobRepository
	quotes  interfaces.IQuoteRepository
	catalog interfaces.ICatalogRepository
	rules   interfaces.IPricingRuleRepository
	vision  interfaces.IVisionClient
	log     *logger.Logger
}

var _ IDetectionUseCase = (*DetectionUseCase)(nil)

func NewDetectionUseCase(
	jobs interfaces.IDetectionJobRepository,
	quotes interfaces.IQuoteRepository,
	catalog interfaces.ICatalogRepository,
	rules interfaces.IPricingRuleRepository,
	vision interfaces.IVisionClient,
	log *logger.Logger,
) *DetectionUseCase {
	return &DetectionUseCase{jobs: jobs, quotes: quotes, catalog: catalog, rules: rules, vision: vision, log: log}
}

// DetectText runs prompt-driven detection for a quote's media files.
func (u *DetectionUseCase) DetectText(ctx context.Context, tenantID string, cmd TextDetectionCommand) (entities.DetectionJob, error) {
	if strings.TrimSpace(cmd.QuoteID) == "" {
		return entities.DetectionJob{}, ErrQuoteNotFound
	}
	if strings.TrimSpace(cmd.Prompt) == "" {
		return entities.DetectionJob{}, ErrPromptRequired
	}

	quote, media, err := u.quoteWithMedia(ctx, tenantID, cmd.QuoteID)
	if err != nil {
		return entities.DetectionJob{}, err
	}

	job, err := u.createJob(ctx, quote, media, entities.DetectionJobTypeText, cmd.Prompt, cmd.AutoAddItems)
	if err != nil {
		return entities.DetectionJob{}, err
	}
	return u.reconcile(ctx, job, quote, media)
}

// DetectAuto runs automatic detection; high-confidence matches are always
// materialized as line items on the quote.
func (u *DetectionUseCase) DetectAuto(ctx context.Context, tenantID, quoteID string) (entities.DetectionJob, error) {
	if strings.TrimSpace(quoteID) == "" {
		return entities.DetectionJob{}, ErrQuoteNotFound
	}

	quote, media, err := u.quoteWithMedia(ctx, tenantID, quoteID)
	if err != nil {
		return entities.DetectionJob{}, err
	}

	job, err := u.createJob(ctx, quote, media, entities.DetectionJobTypeAuto, "", true)
	if err != nil {
		return entities.DetectionJob{}, err
	}
	return u.reconcile(ctx, job, quote, media)
}

func (u *DetectionUseCase) GetJob(ctx context.Context, tenantID, jobID string) (entities.DetectionJob, error) {
	if strings.TrimSpace(jobID) == "" {
		return entities.DetectionJob{}, ErrJobNotFound
	}
	job, err := u.jobs.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.DetectionJob{}, err
	}
	if job.ID == "" {
		return entities.DetectionJob{}, ErrJobNotFound
	}
	return job, nil
}

func (u *DetectionUseCase) ListJobs(ctx context.Context, tenantID string, filter JobFilter) (JobPage, error) {
	jobs, err := u.jobs.List(ctx, tenantID)
	if err != nil {
		return JobPage{}, err
	}

	if filter.Status != "" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if job.Status == filter.Status {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	page, total, pages := paginate(jobs, filter.Page, filter.PerPage)
	current := filter.Page
	if current < 1 {
		current = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	return JobPage{Jobs: page, Total: total, Pages: pages, CurrentPage: current, PerPage: perPage}, nil
}

func (u *DetectionUseCase) quoteWithMedia(ctx context.Context, tenantID, quoteID string) (entities.Quote, []entities.QuoteMedia, error) {
	quote, err := u.quotes.GetByID(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if quote.ID == "" {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}

	media, err := u.quotes.ListMedia(ctx, quote.ID)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if len(media) == 0 {
		return entities.Quote{}, nil, ErrNoMediaFiles
	}
	return quote, media, nil
}

func (u *DetectionUseCase) createJob(
	ctx context.Context,
	quote entities.Quote,
	media []entities.QuoteMedia,
	jobType entities.DetectionJobType,
	prompt string,
	autoAdd bool,
) (entities.DetectionJob, error) {
	mediaIDs := make([]string, 0, len(media))
	for _, m := range media {
		mediaIDs = append(mediaIDs, m.ID)
	}

	return u.jobs.Create(ctx, entities.DetectionJob{
		ID:           uuid.NewString(),
		TenantID:     quote.TenantID,
		QuoteID:      quote.ID,
		MediaIDs:     mediaIDs,
		JobType:      jobType,
		Prompt:       strings.TrimSpace(prompt),
		AutoAddItems: autoAdd,
		Status:       entities.DetectionJobStatusPending,
		CreatedAt:    time.Now().UTC(),
	})
}

// reconcile drives one job from pending to a terminal state: it persists the
// processing transition before the vision call (a crash mid-call leaves an
// observable stuck-processing job, not lost data), maps detections through
// the catalog matcher and materializes high-confidence line items.
//
// A job that already left pending is refused; re-invocation must not create
// duplicate line items.
func (u *DetectionUseCase) reconcile(ctx context.Context, job entities.DetectionJob, quote entities.Quote, media []entities.QuoteMedia) (entities.DetectionJob, error) {
	job, err := u.jobs.MarkProcessing(ctx, job.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrJobNotPending) {
			return entities.DetectionJob{}, ErrJobAlreadyTerminal
		}
		return entities.DetectionJob{}, err
	}

	req := interfaces.DetectRequest{JobID: job.ID, Prompt: job.Prompt}
	for _, m := range media {
		req.Files = append(req.Files, interfaces.DetectFile{FileID: m.ID, FilePath: m.FilePath, FileName: m.FileName})
	}

	var result interfaces.DetectResult
	if job.JobType == entities.DetectionJobTypeText {
		result, err = u.vision.DetectText(ctx, req)
	} else {
		result, err = u.vision.DetectAuto(ctx, req)
	}
	if err != nil {
		u.log.Error("vision call failed", "job_id", job.ID, "error", err)
		return u.jobs.Fail(ctx, job.ID, err.Error(), time.Now().UTC())
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "unknown error"
		}
		return u.jobs.Fail(ctx, job.ID, msg, time.Now().UTC())
	}

	catalog, err := u.catalog.ListActive(ctx, job.TenantID)
	if err != nil {
		u.log.Error("catalog snapshot load failed", "job_id", job.ID, "error", err)
		return u.jobs.Fail(ctx, job.ID, err.Error(), time.Now().UTC())
	}

	mapped := MapDetections(result.Detections, catalog)
	completed, err := u.jobs.Complete(ctx, job.ID, entities.DetectionResults{
		Detections:  result.Detections,
		MappedItems: mapped,
	}, time.Now().UTC())
	if err != nil {
		return entities.DetectionJob{}, err
	}

	if job.AutoAddItems {
		if err := u.autoAddItems(ctx, completed, quote, mapped); err != nil {
			// Recorded but not fatal: the job itself completed.
			u.log.Error("auto-add of detected items failed", "job_id", job.ID, "error", err)
		}
	}
	return completed, nil
}

// autoAddItems materializes mapped items above the job-type threshold as line
// items on the quote and reprices it in the same transactional write.
func (u *DetectionUseCase) autoAddItems(ctx context.Context, job entities.DetectionJob, quote entities.Quote, mapped []entities.MappedItem) error {
	threshold := autoAddThresholdText
	if job.JobType == entities.DetectionJobTypeAuto {
		threshold = autoAddThresholdAuto
	}

	now := time.Now().UTC()
	var newItems []entities.LineItem
	for _, item := range mapped {
		if item.CatalogItemID == "" || item.Confidence <= threshold {
			continue
		}
		confidence := decimal.NewFromFloat(item.Confidence)
		newItems = append(newItems, entities.LineItem{
			ID:            uuid.NewString(),
			QuoteID:       quote.ID,
			CatalogItemID: item.CatalogItemID,
			DetectedName:  item.DetectedName,
			Quantity:      item.Quantity,
			CubicFeet:     item.CubicFeet,
			Confidence:    &confidence,
			CreatedAt:     now,
		})
	}
	if len(newItems) == 0 {
		return nil
	}

	if quote.PricingRuleID == "" {
		u.log.Warn("quote has no pricing rule, skipping auto-add", "quote_id", quote.ID)
		return nil
	}
	rule, err := u.rules.GetByID(ctx, quote.TenantID, quote.PricingRuleID)
	if err != nil {
		return err
	}
	if rule.ID == "" {
		u.log.Warn("pricing rule missing, skipping auto-add", "quote_id", quote.ID, "rule_id", quote.PricingRuleID)
		return nil
	}

	existing, err := u.quotes.ListItems(ctx, quote.ID)
	if err != nil {
		return err
	}
	totals := PriceQuote(append(existing, newItems...), quote.DistanceMiles, rule)
	return u.quotes.AddLineItems(ctx, quote.ID, newItems, totals)
}
