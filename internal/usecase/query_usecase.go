package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sitebooks/ledger/internal/domain"
)

// QueryUseCase serves the read-side projections consumed by reporting and UI
// layers. Status is derived at query time against the current clock; only
// the time-independent aggregate is ever cached.
type QueryUseCase struct {
	entryRepo EntryRepository
	queryRepo QueryRepository
	cache     Cache
	clock     Clock
}

// NewQueryUseCase creates a new QueryUseCase. cache may be nil.
func NewQueryUseCase(entryRepo EntryRepository, queryRepo QueryRepository, cache Cache, clock Clock) *QueryUseCase {
	if clock == nil {
		clock = UTCClock{}
	}

	return &QueryUseCase{
		entryRepo: entryRepo,
		queryRepo: queryRepo,
		cache:     cache,
		clock:     clock,
	}
}

// HistoryInput represents input for listing an account's history.
type HistoryInput struct {
	AccountID string
	Page      int
	PageSize  int
}

// History returns the account's entries ordered by (occurred_at, seq) with
// their running balances. Page numbering starts at 1.
func (uc *QueryUseCase) History(ctx context.Context, input HistoryInput) ([]*domain.Entry, error) {
	if input.Page < 1 {
		input.Page = 1
	}

	limit, _ := domain.ValidatePagination(input.PageSize, 0)
	offset := (input.Page - 1) * limit

	return uc.entryRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}

// SummaryView is an account summary with its status resolved at query time.
type SummaryView struct {
	*domain.AccountSummary
	Status           string
	ReorderTriggered bool
	AsOf             time.Time
}

// Summary returns the aggregate projection for one account. The aggregate
// may come from cache; the status overlay is always recomputed because it
// depends on the current time.
func (uc *QueryUseCase) Summary(ctx context.Context, accountID string) (*SummaryView, error) {
	summary, err := uc.cachedSummary(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return uc.view(summary), nil
}

// SummariesInput represents input for listing summaries.
type SummariesInput struct {
	Kind   *domain.AccountKind
	Limit  int
	Offset int
}

// Summaries returns aggregate projections for all accounts.
func (uc *QueryUseCase) Summaries(ctx context.Context, input SummariesInput) ([]*SummaryView, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	summaries, err := uc.queryRepo.Summaries(ctx, input.Kind, limit, offset)
	if err != nil {
		return nil, err
	}

	return uc.views(summaries), nil
}

// Overdue lists financial accounts whose outstanding balance is past due at
// the time of the call.
func (uc *QueryUseCase) Overdue(ctx context.Context, limit, offset int) ([]*SummaryView, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	summaries, err := uc.queryRepo.Overdue(ctx, uc.clock.Now(), limit, offset)
	if err != nil {
		return nil, err
	}

	return uc.views(summaries), nil
}

// LowStock lists inventory accounts at or below their reorder point or
// minimum stock level.
func (uc *QueryUseCase) LowStock(ctx context.Context, limit, offset int) ([]*SummaryView, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	summaries, err := uc.queryRepo.LowStock(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return uc.views(summaries), nil
}

func (uc *QueryUseCase) cachedSummary(ctx context.Context, accountID string) (*domain.AccountSummary, error) {
	if uc.cache == nil {
		return uc.queryRepo.Summary(ctx, accountID)
	}

	key := SummaryCacheKey(accountID)

	if raw, err := uc.cache.Get(ctx, key); err == nil && len(raw) > 0 {
		var cached domain.AccountSummary
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	summary, err := uc.queryRepo.Summary(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		_ = uc.cache.Set(ctx, key, raw, SummaryCacheTTL)
	}

	return summary, nil
}

func (uc *QueryUseCase) view(s *domain.AccountSummary) *SummaryView {
	now := uc.clock.Now()

	return &SummaryView{
		AccountSummary:   s,
		Status:           s.Status(now),
		ReorderTriggered: s.ReorderTriggered(),
		AsOf:             now,
	}
}

func (uc *QueryUseCase) views(summaries []*domain.AccountSummary) []*SummaryView {
	result := make([]*SummaryView, len(summaries))
	for i, s := range summaries {
		result[i] = uc.view(s)
	}

	return result
}
