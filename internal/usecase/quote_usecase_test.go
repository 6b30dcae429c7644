package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"movequote/internal/domain/entities"
	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
	mock_interfaces "movequote/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	tenants  *mock_interfaces.MockITenantRepository
	users    *mock_interfaces.MockIUserRepository
	rules    *mock_interfaces.MockIPricingRuleRepository
	catalog  *mock_interfaces.MockICatalogRepository
	counters *mock_interfaces.MockICounterStore
	blobs    *mock_interfaces.MockIBlobStore
}

func newQuoteUseCaseForTest(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		tenants:  mock_interfaces.NewMockITenantRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		rules:    mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		counters: mock_interfaces.NewMockICounterStore(ctrl),
		blobs:    mock_interfaces.NewMockIBlobStore(ctrl),
	}
	uc := NewQuoteUseCase(
		m.quotes, m.tenants, m.users, m.rules, m.catalog,
		NewQuoteNumberGenerator(m.counters),
		NewRateLimiter(m.counters, logger.NewNop()),
		m.blobs, logger.NewNop(),
	)
	return uc, m
}

func currentPeriod() string {
	return time.Now().UTC().Format("200601")
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		uc, _ := newQuoteUseCaseForTest(gomock.NewController(t))
		_, err := uc.Create(context.Background(), "tenant-1", CreateQuoteCommand{})
		if !errors.Is(err, ErrCustomerEmailRequired) {
			t.Fatalf("expected ErrCustomerEmailRequired, got %v", err)
		}
	})

	t.Run("no default pricing rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.rules.EXPECT().GetDefault(gomock.Any(), "tenant-1").Return(entities.PricingRule{}, nil)

		_, err := uc.Create(context.Background(), "tenant-1", CreateQuoteCommand{CustomerEmail: "ana@example.com"})
		if !errors.Is(err, ErrNoDefaultPricingRule) {
			t.Fatalf("expected ErrNoDefaultPricingRule, got %v", err)
		}
	})

	t.Run("success applies number, expiry and minimum charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.rules.EXPECT().GetDefault(gomock.Any(), "tenant-1").Return(standardRule(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "tenant-1", "ana@example.com").Return(entities.User{}, nil)
		m.counters.EXPECT().NextSequence(gomock.Any(), "tenant-1", currentPeriod()).Return(int64(1), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, items []entities.LineItem) (entities.Quote, error) {
				wantNumber := fmt.Sprintf("Q%s0001", currentPeriod())
				if q.QuoteNumber != wantNumber {
					t.Fatalf("expected quote number %s, got %s", wantNumber, q.QuoteNumber)
				}
				if q.Status != entities.QuoteStatusPending || q.PricingRuleID != "rule-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.ExpiresAt == nil || !q.ExpiresAt.After(q.CreatedAt) {
					t.Fatalf("expected expiry after creation, got %+v", q.ExpiresAt)
				}
				if !q.Totals.Subtotal.Equal(decimal.RequireFromString("150.00")) {
					t.Fatalf("expected minimum charge subtotal, got %s", q.Totals.Subtotal)
				}
				if len(items) != 0 {
					t.Fatalf("expected no items, got %d", len(items))
				}
				return q, nil
			},
		)

		quote, err := uc.Create(context.Background(), "tenant-1", CreateQuoteCommand{CustomerEmail: " ana@example.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.CustomerEmail != "ana@example.com" {
			t.Fatalf("expected trimmed email, got %q", quote.CustomerEmail)
		}
	})

	t.Run("number conflict retries with a fresh number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.rules.EXPECT().GetDefault(gomock.Any(), "tenant-1").Return(standardRule(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "tenant-1", "ana@example.com").Return(entities.User{}, nil)
		m.counters.EXPECT().NextSequence(gomock.Any(), "tenant-1", currentPeriod()).Return(int64(7), nil)
		m.counters.EXPECT().NextSequence(gomock.Any(), "tenant-1", currentPeriod()).Return(int64(8), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrQuoteNumberConflict)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ []entities.LineItem) (entities.Quote, error) {
				wantNumber := fmt.Sprintf("Q%s0008", currentPeriod())
				if q.QuoteNumber != wantNumber {
					t.Fatalf("expected retried number %s, got %s", wantNumber, q.QuoteNumber)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), "tenant-1", CreateQuoteCommand{CustomerEmail: "ana@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-conflict insert error is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.rules.EXPECT().GetDefault(gomock.Any(), "tenant-1").Return(standardRule(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "tenant-1", "ana@example.com").Return(entities.User{}, nil)
		m.counters.EXPECT().NextSequence(gomock.Any(), "tenant-1", currentPeriod()).Return(int64(1), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db down"))

		_, err := uc.Create(context.Background(), "tenant-1", CreateQuoteCommand{CustomerEmail: "ana@example.com"})
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_SubmitPublic(t *testing.T) {
	activeTenant := entities.Tenant{ID: "tenant-1", Slug: "acme-moving", Name: "Acme Moving", IsActive: true}

	t.Run("unknown tenant slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "ghost").Return(entities.Tenant{}, nil)

		_, err := uc.SubmitPublic(context.Background(), "ghost", "203.0.113.9", PublicSubmissionCommand{})
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("inactive tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme-moving").Return(entities.Tenant{ID: "tenant-1", IsActive: false}, nil)

		_, err := uc.SubmitPublic(context.Background(), "acme-moving", "203.0.113.9", PublicSubmissionCommand{})
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme-moving").Return(activeTenant, nil)
		m.counters.EXPECT().IncrementWindow(gomock.Any(), "tenant-1", "203.0.113.9", publicQuoteEndpoint, gomock.Any(), gomock.Any()).
			Return(0, interfaces.ErrLimitExceeded)

		_, err := uc.SubmitPublic(context.Background(), "acme-moving", "203.0.113.9", PublicSubmissionCommand{
			CustomerEmail: "ana@example.com", CustomerName: "Ana Souza",
		})
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme-moving").Return(activeTenant, nil)
		m.counters.EXPECT().IncrementWindow(gomock.Any(), "tenant-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)

		_, err := uc.SubmitPublic(context.Background(), "acme-moving", "203.0.113.9", PublicSubmissionCommand{
			CustomerEmail: "ana@example.com",
		})
		if !errors.Is(err, ErrCustomerNameRequired) {
			t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
		}
	})

	t.Run("success creates the customer and the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme-moving").Return(activeTenant, nil)
		m.counters.EXPECT().IncrementWindow(gomock.Any(), "tenant-1", "203.0.113.9", publicQuoteEndpoint, gomock.Any(), gomock.Any()).Return(1, nil)
		m.rules.EXPECT().GetDefault(gomock.Any(), "tenant-1").Return(standardRule(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "tenant-1", "ana@example.com").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				if user.FirstName != "Ana" || user.LastName != "Souza" {
					t.Fatalf("expected split name, got %q %q", user.FirstName, user.LastName)
				}
				if user.Role != entities.UserRoleCustomer || !user.IsActive {
					t.Fatalf("unexpected user: %+v", user)
				}
				return user, nil
			},
		)
		m.counters.EXPECT().NextSequence(gomock.Any(), "tenant-1", currentPeriod()).Return(int64(3), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote, _ []entities.LineItem) (entities.Quote, error) {
				if q.CustomerID == "" {
					t.Fatalf("expected customer linked to quote")
				}
				if q.TenantID != "tenant-1" || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		quote, err := uc.SubmitPublic(context.Background(), "acme-moving", "203.0.113.9", PublicSubmissionCommand{
			CustomerEmail: "ana@example.com", CustomerName: "Ana Souza",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.QuoteNumber != fmt.Sprintf("Q%s0003", currentPeriod()) {
			t.Fatalf("unexpected quote number %s", quote.QuoteNumber)
		}
	})
}

func TestQuoteUseCase_GetPublic(t *testing.T) {
	t.Run("unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "ghost").Return(entities.Tenant{}, nil)

		_, err := uc.GetPublic(context.Background(), "ghost", "Q2026080001")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("unknown quote number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme").Return(entities.Tenant{ID: "tenant-1", Slug: "acme", IsActive: true}, nil)
		m.quotes.EXPECT().GetByNumber(gomock.Any(), "tenant-1", "Q2026089999").Return(entities.Quote{}, nil)

		_, err := uc.GetPublic(context.Background(), "acme", "Q2026089999")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("blank quote number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme").Return(entities.Tenant{ID: "tenant-1", Slug: "acme", IsActive: true}, nil)

		_, err := uc.GetPublic(context.Background(), "acme", "  ")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme").Return(entities.Tenant{ID: "tenant-1", Slug: "acme", IsActive: true}, nil)
		m.quotes.EXPECT().GetByNumber(gomock.Any(), "tenant-1", "Q2026080001").Return(entities.Quote{
			ID:          "quote-1",
			TenantID:    "tenant-1",
			QuoteNumber: "Q2026080001",
			Status:      entities.QuoteStatusApproved,
		}, nil)

		quote, err := uc.GetPublic(context.Background(), "acme", "Q2026080001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.QuoteNumber != "Q2026080001" || quote.Status != entities.QuoteStatusApproved {
			t.Fatalf("unexpected quote %+v", quote)
		}
	})
}

func TestQuoteUseCase_TenantConfig(t *testing.T) {
	t.Run("inactive tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "dormant").Return(entities.Tenant{ID: "tenant-9", Slug: "dormant"}, nil)

		_, err := uc.TenantConfig(context.Background(), "dormant")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.tenants.EXPECT().GetBySlug(gomock.Any(), "acme").Return(entities.Tenant{
			ID: "tenant-1", Slug: "acme", Name: "Acme Moving", IsActive: true,
		}, nil)

		tenant, err := uc.TenantConfig(context.Background(), "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.Slug != "acme" || tenant.Name != "Acme Moving" {
			t.Fatalf("unexpected tenant %+v", tenant)
		}
	})
}

func TestQuoteUseCase_AddItem(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-404").Return(entities.Quote{}, nil)

		_, err := uc.AddItem(context.Background(), "tenant-1", "quote-404", ItemCommand{DetectedName: "sofa"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("detected name is matched and the quote repriced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		quote := entities.Quote{ID: "quote-1", TenantID: "tenant-1", PricingRuleID: "rule-1"}
		catalog := []entities.CatalogItem{catalogItem("cat-sofa", "sofa", nil, "50")}

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
		m.catalog.EXPECT().ListActive(gomock.Any(), "tenant-1").Return(catalog, nil)
		m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)
		m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return(nil, nil)
		m.quotes.EXPECT().AddLineItem(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.LineItem, totals entities.QuoteTotals) (entities.LineItem, error) {
				if item.CatalogItemID != "cat-sofa" || item.QuoteID != "quote-1" {
					t.Fatalf("unexpected item: %+v", item)
				}
				if item.LaborHours == nil || !item.LaborHours.Equal(decimal.RequireFromString("7.5")) {
					t.Fatalf("expected 7.5 labor hours, got %+v", item.LaborHours)
				}
				// 50 cf * 8.50 + 7.5 h * 85.00
				if !totals.Subtotal.Equal(decimal.RequireFromString("1062.5")) {
					t.Fatalf("unexpected subtotal %s", totals.Subtotal)
				}
				return item, nil
			},
		)

		item, err := uc.AddItem(context.Background(), "tenant-1", "quote-1", ItemCommand{DetectedName: "sofa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 1 {
			t.Fatalf("expected defaulted quantity, got %d", item.Quantity)
		}
	})

	t.Run("explicit catalog reference copies the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		quote := entities.Quote{ID: "quote-1", TenantID: "tenant-1", PricingRuleID: "rule-1"}
		entry := catalogItem("cat-piano", "upright piano", nil, "70")

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
		m.catalog.EXPECT().GetByID(gomock.Any(), "tenant-1", "cat-piano").Return(entry, nil)
		m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)
		m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return(nil, nil)
		m.quotes.EXPECT().AddLineItem(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.LineItem, _ entities.QuoteTotals) (entities.LineItem, error) {
				if item.DetectedName != "upright piano" || item.CatalogItemID != "cat-piano" {
					t.Fatalf("unexpected item: %+v", item)
				}
				return item, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "tenant-1", "quote-1", ItemCommand{CatalogItemID: "cat-piano", Quantity: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuoteUseCaseForTest(ctrl)

	quote := entities.Quote{ID: "quote-1", TenantID: "tenant-1", PricingRuleID: "rule-1"}
	m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
	m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return([]entities.LineItem{{ID: "item-1"}}, nil)

	err := uc.RemoveItem(context.Background(), "tenant-1", "quote-1", "item-404")
	if !errors.Is(err, ErrQuoteItemNotFound) {
		t.Fatalf("expected ErrQuoteItemNotFound, got %v", err)
	}
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(entities.Quote{ID: "quote-1", TenantID: "tenant-1"}, nil)

		bogus := entities.QuoteStatus("bogus")
		_, err := uc.Update(context.Background(), "tenant-1", "quote-1", UpdateQuoteCommand{Status: &bogus})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("distance change reprices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseForTest(ctrl)

		quote := entities.Quote{ID: "quote-1", TenantID: "tenant-1", PricingRuleID: "rule-1", CustomerEmail: "ana@example.com"}
		m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
		m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)

		cf := decimal.RequireFromString("100")
		m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return([]entities.LineItem{
			{ID: "item-1", QuoteID: "quote-1", Quantity: 1, CubicFeet: &cf},
		}, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				// 100 cf * 8.50 + 20 mi * 2.50
				if !q.Totals.Subtotal.Equal(decimal.RequireFromString("900")) {
					t.Fatalf("unexpected subtotal %s", q.Totals.Subtotal)
				}
				return q, nil
			},
		)

		miles := decimal.RequireFromString("20")
		if _, err := uc.Update(context.Background(), "tenant-1", "quote-1", UpdateQuoteCommand{DistanceMiles: &miles}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Recalculate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuoteUseCaseForTest(ctrl)

	quote := entities.Quote{ID: "quote-1", TenantID: "tenant-1", PricingRuleID: "rule-1"}
	m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(quote, nil)
	m.rules.EXPECT().GetByID(gomock.Any(), "tenant-1", "rule-1").Return(standardRule(), nil)
	m.quotes.EXPECT().ListItems(gomock.Any(), "quote-1").Return(nil, nil)
	m.quotes.EXPECT().UpdateTotals(gomock.Any(), "tenant-1", "quote-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, totals entities.QuoteTotals) (entities.Quote, error) {
			if !totals.Subtotal.Equal(decimal.RequireFromString("150.00")) {
				t.Fatalf("expected minimum charge floor, got %s", totals.Subtotal)
			}
			return quote, nil
		},
	)

	if _, err := uc.Recalculate(context.Background(), "tenant-1", "quote-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_RecalculateWithoutRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newQuoteUseCaseForTest(ctrl)

	m.quotes.EXPECT().GetByID(gomock.Any(), "tenant-1", "quote-1").Return(entities.Quote{ID: "quote-1", TenantID: "tenant-1"}, nil)

	_, err := uc.Recalculate(context.Background(), "tenant-1", "quote-1")
	if !errors.Is(err, ErrNoPricingRule) {
		t.Fatalf("expected ErrNoPricingRule, got %v", err)
	}
}
