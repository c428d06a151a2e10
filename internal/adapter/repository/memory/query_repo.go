package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
)

// QueryRepository implements usecase.QueryRepository by folding the in-memory
// entry slices on every call. Aggregation cost is irrelevant at the sizes
// this store is used for.
type QueryRepository struct {
	store *Store
}

func (r *QueryRepository) Summary(ctx context.Context, accountID string) (*domain.AccountSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return r.summaryLocked(account), nil
}

func (r *QueryRepository) Summaries(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.AccountSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := r.allLocked(func(account *domain.Account) bool {
		return kind == nil || account.Kind == *kind
	})

	return pageSummaries(summaries, limit, offset), nil
}

func (r *QueryRepository) Overdue(ctx context.Context, now time.Time, limit, offset int) ([]*domain.AccountSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := r.allLocked(func(account *domain.Account) bool {
		return account.Kind == domain.KindFinancial
	})

	overdue := summaries[:0]
	for _, s := range summaries {
		if s.Balance.IsPositive() && s.Facts.NextDueDate != nil && s.Facts.NextDueDate.Before(now) {
			overdue = append(overdue, s)
		}
	}

	return pageSummaries(overdue, limit, offset), nil
}

func (r *QueryRepository) LowStock(ctx context.Context, limit, offset int) ([]*domain.AccountSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := r.allLocked(func(account *domain.Account) bool {
		return account.Kind == domain.KindInventory
	})

	low := summaries[:0]
	for _, s := range summaries {
		threshold := s.MinimumStockLevel
		if s.ReorderPoint.GreaterThan(threshold) {
			threshold = s.ReorderPoint
		}

		if s.EntryCount > 0 && s.Balance.LessThanOrEqual(threshold) {
			low = append(low, s)
		}
	}

	return pageSummaries(low, limit, offset), nil
}

func (r *QueryRepository) allLocked(keep func(*domain.Account) bool) []*domain.AccountSummary {
	summaries := make([]*domain.AccountSummary, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		if !keep(account) {
			continue
		}

		summaries = append(summaries, r.summaryLocked(account))
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].AccountID < summaries[j].AccountID })

	return summaries
}

func (r *QueryRepository) summaryLocked(account *domain.Account) *domain.AccountSummary {
	entries := r.store.entries[account.ID]

	summary := &domain.AccountSummary{
		AccountID:         account.ID,
		Name:              account.Name,
		Kind:              account.Kind,
		Balance:           account.Balance,
		TotalDebits:       decimal.Zero,
		TotalCredits:      decimal.Zero,
		EntryCount:        int64(len(entries)),
		Halted:            account.Halted,
		Facts:             domain.FactsFromEntries(entries),
		MinimumStockLevel: account.MinimumStockLevel,
		MaximumStockLevel: account.MaximumStockLevel,
		ReorderPoint:      account.ReorderPoint,
	}

	for _, e := range entries {
		if e.Delta.IsNegative() {
			summary.TotalCredits = summary.TotalCredits.Add(e.Delta.Neg())
		} else {
			summary.TotalDebits = summary.TotalDebits.Add(e.Delta)
		}
	}

	if len(entries) > 0 {
		last := entries[len(entries)-1].RecordedAt
		summary.LastTransactionAt = &last
	}

	return summary
}

func pageSummaries(summaries []*domain.AccountSummary, limit, offset int) []*domain.AccountSummary {
	if offset >= len(summaries) {
		return nil
	}

	end := offset + limit
	if end > len(summaries) {
		end = len(summaries)
	}

	return summaries[offset:end]
}
