package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
	"github.com/sitebooks/ledger/internal/usecase/mocks"
)

func TestQueryUseCase_SummaryCachesAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queryRepo := mocks.NewGomockQueryRepository(ctrl)
	cache := mocks.NewMockCache()
	clock := &mocks.MockClock{Time: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	summary := &domain.AccountSummary{
		AccountID:  "sup-1",
		Name:       "Acme Metals",
		Kind:       domain.KindFinancial,
		Balance:    decimal.NewFromInt(400),
		EntryCount: 2,
		Facts:      domain.BalanceFacts{EntryCount: 2, PaymentSinceLastPurchase: true},
	}

	// The repository is hit once; the second read is served from cache.
	queryRepo.EXPECT().Summary(gomock.Any(), "sup-1").Return(summary, nil).Times(1)

	uc := usecase.NewQueryUseCase(mocks.NewMockEntryRepository(), queryRepo, cache, clock)

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		view, err := uc.Summary(ctx, "sup-1")
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}

		if view.Status != string(domain.PaymentPartial) {
			t.Errorf("read %d: expected PARTIAL, got %s", i, view.Status)
		}

		if !view.Balance.Equal(decimal.NewFromInt(400)) {
			t.Errorf("read %d: expected balance 400, got %s", i, view.Balance)
		}
	}
}

func TestQueryUseCase_SummaryOverdueOverlayTracksClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	summary := &domain.AccountSummary{
		AccountID:  "sup-1",
		Kind:       domain.KindFinancial,
		Balance:    decimal.NewFromInt(1000),
		EntryCount: 1,
		Facts:      domain.BalanceFacts{EntryCount: 1, NextDueDate: &due},
	}

	queryRepo := mocks.NewGomockQueryRepository(ctrl)
	queryRepo.EXPECT().Summary(gomock.Any(), "sup-1").Return(summary, nil).Times(1)

	cache := mocks.NewMockCache()
	clock := &mocks.MockClock{Time: due.Add(-24 * time.Hour)}

	uc := usecase.NewQueryUseCase(mocks.NewMockEntryRepository(), queryRepo, cache, clock)
	ctx := context.Background()

	view, err := uc.Summary(ctx, "sup-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Status != string(domain.PaymentPending) {
		t.Errorf("expected PENDING before the due date, got %s", view.Status)
	}

	// Same cached aggregate, later clock. The overlay flips without a write.
	clock.Time = due.Add(24 * time.Hour)

	view, err = uc.Summary(ctx, "sup-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Status != string(domain.PaymentOverdue) {
		t.Errorf("expected OVERDUE after the due date, got %s", view.Status)
	}
}

func TestQueryUseCase_Overdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := now.Add(-48 * time.Hour)

	queryRepo := mocks.NewGomockQueryRepository(ctrl)
	queryRepo.EXPECT().Overdue(gomock.Any(), now, 50, 0).Return([]*domain.AccountSummary{
		{
			AccountID:  "sup-1",
			Kind:       domain.KindFinancial,
			Balance:    decimal.NewFromInt(1000),
			EntryCount: 1,
			Facts:      domain.BalanceFacts{EntryCount: 1, NextDueDate: &due},
		},
	}, nil)

	uc := usecase.NewQueryUseCase(mocks.NewMockEntryRepository(), queryRepo, nil, &mocks.MockClock{Time: now})

	views, err := uc.Overdue(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 overdue account, got %d", len(views))
	}

	if views[0].Status != string(domain.PaymentOverdue) {
		t.Errorf("expected OVERDUE, got %s", views[0].Status)
	}
}

func TestQueryUseCase_LowStockFlagsReorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queryRepo := mocks.NewGomockQueryRepository(ctrl)
	queryRepo.EXPECT().LowStock(gomock.Any(), 50, 0).Return([]*domain.AccountSummary{
		{
			AccountID:         "mat-1",
			Kind:              domain.KindInventory,
			Balance:           decimal.NewFromInt(10),
			EntryCount:        3,
			MinimumStockLevel: decimal.NewFromInt(20),
			ReorderPoint:      decimal.NewFromInt(25),
		},
	}, nil)

	uc := usecase.NewQueryUseCase(mocks.NewMockEntryRepository(), queryRepo, nil, nil)

	views, err := uc.LowStock(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected 1 low stock account, got %d", len(views))
	}

	if views[0].Status != string(domain.StockLow) {
		t.Errorf("expected LOW, got %s", views[0].Status)
	}

	if !views[0].ReorderTriggered {
		t.Error("expected reorder trigger for quantity below reorder point")
	}
}

func TestQueryUseCase_HistoryUsesDisplayOrder(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()

	// Seq 2 is backdated before seq 1.
	entryRepo.Seed("sup-1",
		&domain.Entry{
			AccountID: "sup-1", Seq: 1, Delta: decimal.NewFromInt(100), BalanceAfter: decimal.NewFromInt(100),
			OccurredAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		&domain.Entry{
			AccountID: "sup-1", Seq: 2, Delta: decimal.NewFromInt(50), BalanceAfter: decimal.NewFromInt(150),
			OccurredAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	)

	uc := usecase.NewQueryUseCase(entryRepo, mocks.NewMockQueryRepository(), nil, nil)

	entries, err := uc.History(context.Background(), usecase.HistoryInput{AccountID: "sup-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Seq != 2 || entries[1].Seq != 1 {
		t.Errorf("expected occurred_at order [2 1], got [%d %d]", entries[0].Seq, entries[1].Seq)
	}
}
