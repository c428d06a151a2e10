package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository against the shared
// in-memory store. Entries are append-only; the slice per account is kept in
// seq order.
type EntryRepository struct {
	store *Store
}

func (r *EntryRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing := r.store.entries[entry.AccountID]
	if entry.Seq != int64(len(existing))+1 {
		return domain.ErrConcurrentModification
	}

	copied := *entry
	r.store.entries[entry.AccountID] = append(existing, &copied)

	return nil
}

func (r *EntryRepository) Latest(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	existing := r.store.entries[accountID]
	if len(existing) == 0 {
		return nil, domain.ErrEntryNotFound
	}

	copied := *existing[len(existing)-1]

	return &copied, nil
}

func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	existing := r.store.entries[accountID]

	ordered := make([]*domain.Entry, len(existing))
	for i, e := range existing {
		copied := *e
		ordered[i] = &copied
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].OccurredAt.Equal(ordered[j].OccurredAt) {
			return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
		}

		return ordered[i].Seq < ordered[j].Seq
	})

	if offset >= len(ordered) {
		return nil, nil
	}

	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	return ordered[offset:end], nil
}

func (r *EntryRepository) ListBySeq(ctx context.Context, accountID string, afterSeq int64, limit int) ([]*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var page []*domain.Entry
	for _, e := range r.store.entries[accountID] {
		if e.Seq <= afterSeq {
			continue
		}

		copied := *e
		page = append(page, &copied)

		if len(page) == limit {
			break
		}
	}

	return page, nil
}

func (r *EntryRepository) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	balance := decimal.Zero
	for _, e := range r.store.entries[accountID] {
		if !e.OccurredAt.After(at) {
			balance = balance.Add(e.Delta)
		}
	}

	return balance, nil
}
