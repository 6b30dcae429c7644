package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
	mock_interfaces "movequote/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type detectionMocks struct {
	jobs    *mock_interfaces.MockIDetectionJobRepository
	quotes  *mock_interfaces.MockIQuoteRepository
	catalog *mock_interfaces.MockICatalogRepository
	rules   *mock_interfaces.MockIPricingRuleRepository
	vision  *mock_interfaces.MockIVisionClient
}

func newDetectionUseCaseForTest(ctrl *gomock.Controller) (*DetectionUseCase, detectionMocks) {
	m := detectionMocks{
		jobs:    mock_interfaces.NewMockIDetectionJobRepository(ctrl),
		quotes:  mock_interfaces.NewMockIQuoteRepository(ctrl),
		catalog: mock_interfaces.NewMockICatalogRepository(ctrl),
		rules:   mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		vision:  mock_interfaces.NewMockIVisionClient(ctrl),
	}
	uc := NewDetectionUseCase(m.jobs, m.quotes, m.catalog, m.rules, m.vision, logger.NewNop())
	return uc, m
}

func detectionQuote() entities.Quote {
	return entities.Quote{
		ID:            "quote-1",
		TenantID:      "tenant-1",
		Status:        entities.QuoteStatusPending,
		CustomerEmail: "ana@example.com",
		PricingRuleID: "rule-1",
	}
}

func detectionMedia() []entities.QuoteMedia {
	return []entities.QuoteMedia{
		{ID: "media-1", QuoteID: "quote-1", FileName: "living-room.jpg", FilePath: "https://cdn.example.com/living-room.jpg"},
	}
}

func TestDetectionUseCase_DetectText_Validation(t *testing.T) {
	t.Run("missing quote id", func(t *testing.T) {
		uc, _ := newDetectionUseCaseForTest(gomock.NewController(t))
		_, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{Prompt: "sofa"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		uc, _ := newDetectionUseCaseForTest(gomock.NewController(t))
		_, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "   "})
		if !errors.Is(err, ErrPromptRequired) {
			t.Fatalf("expected ErrPromptRequired, got %v", err)
		}
	})

	t.Run("quote without media", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
		m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(nil, nil)

		_, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa"})
		if !errors.Is(err, ErrNoMediaFiles) {
			t.Fatalf("expected ErrNoMediaFiles, got %v", err)
		}
	})
}

func TestDetectionUseCase_DetectText_SuccessWithAutoAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newDetectionUseCaseForTest(ctrl)

	quote := detectionQuote()
	catalog := []entities.CatalogItem{catalogItem("cat-sofa", "sofa", []string{"couch"}, "50")}

	m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
	m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)

	m.jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DetectionJob{})).DoAndReturn(
		func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) {
			if job.ID == "" || job.TenantID != "tenant-1" || job.QuoteID != "quote-1" {
				t.Fatalf("unexpected job: %+v", job)
			}
			if job.JobType != entities.DetectionJobTypeText || job.Prompt != "sofa" || !job.AutoAddItems {
				t.Fatalf("unexpected job config: %+v", job)
			}
			if job.Status != entities.DetectionJobStatusPending {
				t.Fatalf("expected pending job, got %s", job.Status)
			}
			if len(job.MediaIDs) != 1 || job.MediaIDs[0] != "media-1" {
				t.Fatalf("unexpected media ids: %v", job.MediaIDs)
			}
			return job, nil
		},
	)

	m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.DetectionJob, error) {
			return entities.DetectionJob{
				ID: id, TenantID: "tenant-1", QuoteID: "quote-1",
				JobType: entities.DetectionJobTypeText, Prompt: "sofa", AutoAddItems: true,
				Status: entities.DetectionJobStatusProcessing,
			}, nil
		},
	)

	m.vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.DetectRequest) (interfaces.DetectResult, error) {
			if req.Prompt != "sofa" || len(req.Files) != 1 || req.Files[0].FileID != "media-1" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return interfaces.DetectResult{
				Success:    true,
				Detections: []entities.Detection{{Name: "sofa", Confidence: 0.95, Quantity: 1}},
			}, nil
		},
	)

	m.catalog.EXPECT().ListActive(gomock.Any(), "tenant-1").Return(catalog, nil)

	m.jobs.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, results entities.DetectionResults, completedAt time.Time) (entities.DetectionJob, error) {
			if len(results.Detections) != 1 || len(results.MappedItems) != 1 {
				t.Fatalf("unexpected results: %+v", results)
			}
			mapped := results.MappedItems[0]
			if mapped.CatalogItemID != "cat-sofa" || mapped.MatchWeight != 1.0 {
				t.Fatalf("unexpected mapped item: %+v", mapped)
			}
			return entities.DetectionJob{
				ID: id, TenantID: "tenant-1", QuoteID: "quote-1",
				JobType: entities.DetectionJobTypeText, AutoAddItems: true,
				Status: entities.DetectionJobStatusCompleted, CompletedAt: &completedAt,
				Results: &results,
			}, nil
		},
	)

	m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)
	m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return(nil, nil)
	m.quotes.EXPECT().AddLineItems(gomock.Any(), "quote-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, items []entities.LineItem, totals entities.QuoteTotals) error {
			if len(items) != 1 {
				t.Fatalf("expected one auto-added item, got %d", len(items))
			}
			item := items[0]
			if item.CatalogItemID != "cat-sofa" || item.Confidence == nil {
				t.Fatalf("unexpected line item: %+v", item)
			}
			if item.CubicFeet == nil || !item.CubicFeet.Equal(decimal.RequireFromString("50")) {
				t.Fatalf("expected cubic feet from catalog, got %+v", item.CubicFeet)
			}
			if totals.Subtotal.IsZero() {
				t.Fatalf("expected repriced totals, got %+v", totals)
			}
			return nil
		},
	)

	job, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{
		QuoteID: "quote-1", Prompt: "sofa", AutoAddItems: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Status != entities.DetectionJobStatusCompleted {
		t.Fatalf("expected completed job, got %s", job.Status)
	}
	if job.CompletedAt == nil {
		t.Fatalf("expected completion timestamp")
	}
}

func TestDetectionUseCase_Reconcile_Failures(t *testing.T) {
	t.Run("vision transport error fails the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
		m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) { return job, nil },
		)
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: entities.DetectionJobTypeText, Status: entities.DetectionJobStatusProcessing}, nil
			},
		)
		m.vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return(interfaces.DetectResult{}, errors.New("connection refused"))
		m.jobs.EXPECT().Fail(gomock.Any(), gomock.Any(), "connection refused", gomock.Any()).DoAndReturn(
			func(_ context.Context, id, msg string, completedAt time.Time) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, Status: entities.DetectionJobStatusFailed, ErrorMessage: msg, CompletedAt: &completedAt}, nil
			},
		)

		job, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.DetectionJobStatusFailed || job.ErrorMessage != "connection refused" {
			t.Fatalf("expected failed job, got %+v", job)
		}
	})

	t.Run("unsuccessful result fails the job with the service message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
		m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) { return job, nil },
		)
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: entities.DetectionJobTypeText, Status: entities.DetectionJobStatusProcessing}, nil
			},
		)
		m.vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return(interfaces.DetectResult{Success: false, Error: "model not loaded"}, nil)
		m.jobs.EXPECT().Fail(gomock.Any(), gomock.Any(), "model not loaded", gomock.Any()).DoAndReturn(
			func(_ context.Context, id, msg string, completedAt time.Time) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, Status: entities.DetectionJobStatusFailed, ErrorMessage: msg, CompletedAt: &completedAt}, nil
			},
		)

		job, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.DetectionJobStatusFailed {
			t.Fatalf("expected failed job, got %+v", job)
		}
	})

	t.Run("job already left pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
		m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) { return job, nil },
		)
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).Return(entities.DetectionJob{}, interfaces.ErrJobNotPending)

		_, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa"})
		if !errors.Is(err, ErrJobAlreadyTerminal) {
			t.Fatalf("expected ErrJobAlreadyTerminal, got %v", err)
		}
	})
}

func TestDetectionUseCase_AutoAddThresholds(t *testing.T) {
	runDetection := func(t *testing.T, jobType entities.DetectionJobType, confidence float64, expectAdd bool) {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		catalog := []entities.CatalogItem{catalogItem("cat-sofa", "sofa", nil, "50")}

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
		m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) { return job, nil },
		)
		m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: jobType, Prompt: "sofa", AutoAddItems: true, Status: entities.DetectionJobStatusProcessing}, nil
			},
		)
		result := interfaces.DetectResult{Success: true, Detections: []entities.Detection{{Name: "sofa", Confidence: confidence, Quantity: 1}}}
		if jobType == entities.DetectionJobTypeText {
			m.vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return(result, nil)
		} else {
			m.vision.EXPECT().DetectAuto(gomock.Any(), gomock.Any()).Return(result, nil)
		}
		m.catalog.EXPECT().ListActive(gomock.Any(), "tenant-1").Return(catalog, nil)
		m.jobs.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, results entities.DetectionResults, completedAt time.Time) (entities.DetectionJob, error) {
				return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: jobType, AutoAddItems: true, Status: entities.DetectionJobStatusCompleted, CompletedAt: &completedAt, Results: &results}, nil
			},
		)
		if expectAdd {
			m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)
			m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return(nil, nil)
			m.quotes.EXPECT().AddLineItems(gomock.Any(), "quote-1", gomock.Any(), gomock.Any()).Return(nil)
		}

		var err error
		if jobType == entities.DetectionJobTypeText {
			_, err = uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa", AutoAddItems: true})
		} else {
			_, err = uc.DetectAuto(context.Background(), "tenant-1", "quote-1")
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("text at threshold is excluded", func(t *testing.T) {
		runDetection(t, entities.DetectionJobTypeText, 0.7, false)
	})
	t.Run("text above threshold is added", func(t *testing.T) {
		runDetection(t, entities.DetectionJobTypeText, 0.71, true)
	})
	t.Run("auto between thresholds is excluded", func(t *testing.T) {
		runDetection(t, entities.DetectionJobTypeAuto, 0.75, false)
	})
	t.Run("auto above threshold is added", func(t *testing.T) {
		runDetection(t, entities.DetectionJobTypeAuto, 0.85, true)
	})
}

func TestDetectionUseCase_AutoAddFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newDetectionUseCaseForTest(ctrl)

	catalog := []entities.CatalogItem{catalogItem("cat-sofa", "sofa", nil, "50")}

	m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(detectionQuote(), nil)
	m.quotes.EXPECT().ListMedia(gomock.Any(), "quote-1").Return(detectionMedia(), nil)
	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job entities.DetectionJob) (entities.DetectionJob, error) { return job, nil },
	)
	m.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.DetectionJob, error) {
			return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: entities.DetectionJobTypeText, Prompt: "sofa", AutoAddItems: true, Status: entities.DetectionJobStatusProcessing}, nil
		},
	)
	m.vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return(interfaces.DetectResult{
		Success:    true,
		Detections: []entities.Detection{{Name: "sofa", Confidence: 0.9, Quantity: 1}},
	}, nil)
	m.catalog.EXPECT().ListActive(gomock.Any(), "tenant-1").Return(catalog, nil)
	m.jobs.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, results entities.DetectionResults, completedAt time.Time) (entities.DetectionJob, error) {
			return entities.DetectionJob{ID: id, TenantID: "tenant-1", QuoteID: "quote-1", JobType: entities.DetectionJobTypeText, AutoAddItems: true, Status: entities.DetectionJobStatusCompleted, CompletedAt: &completedAt, Results: &results}, nil
		},
	)
	m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(entities.PricingRule{}, errors.New("db down"))

	job, err := uc.DetectText(context.Background(), "tenant-1", TextDetectionCommand{QuoteID: "quote-1", Prompt: "sofa", AutoAddItems: true})
	if err != nil {
		t.Fatalf("expected completed job despite auto-add failure, got %v", err)
	}
	if job.Status != entities.DetectionJobStatusCompleted {
		t.Fatalf("expected completed job, got %s", job.Status)
	}
}

func TestDetectionUseCase_GetJob(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newDetectionUseCaseForTest(gomock.NewController(t))
		_, err := uc.GetJob(context.Background(), "tenant-1", "  ")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDetectionUseCaseForTest(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "tenant-1", "job-404").Return(entities.DetectionJob{}, nil)

		_, err := uc.GetJob(context.Background(), "tenant-1", "job-404")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestDetectionUseCase_ListJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newDetectionUseCaseForTest(ctrl)

	jobs := []entities.DetectionJob{
		{ID: "job-1", Status: entities.DetectionJobStatusCompleted},
		{ID: "job-2", Status: entities.DetectionJobStatusFailed},
		{ID: "job-3", Status: entities.DetectionJobStatusCompleted},
	}
	m.jobs.EXPECT().List(gomock.Any(), "tenant-1").Return(jobs, nil)

	page, err := uc.ListJobs(context.Background(), "tenant-1", JobFilter{Status: entities.DetectionJobStatusCompleted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 || len(page.Jobs) != 2 {
		t.Fatalf("expected two completed jobs, got %+v", page)
	}
	if page.Jobs[0].ID != "job-1" || page.Jobs[1].ID != "job-3" {
		t.Fatalf("unexpected ordering: %+v", page.Jobs)
	}
}
