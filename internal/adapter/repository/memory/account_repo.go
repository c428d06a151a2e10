package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository against the shared
// in-memory store.
type AccountRepository struct {
	store *Store
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.accounts[account.ID]; exists {
		return domain.ErrConcurrentModification
	}

	copied := *account
	r.store.accounts[account.ID] = &copied

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.getLocked(id)
}

// GetByIDForUpdate is identical to GetByID here. The memory store has no row
// locks; writers are serialized by the account locker instead.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	if account.Version != expectedVersion {
		return domain.ErrConcurrentModification
	}

	account.Balance = balance
	account.Version++
	account.UpdatedAt = updatedAt

	return nil
}

func (r *AccountRepository) SetHalted(ctx context.Context, id string, halted bool, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	account.Halted = halted
	account.UpdatedAt = updatedAt

	return nil
}

func (r *AccountRepository) List(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		if kind != nil && account.Kind != *kind {
			continue
		}

		copied := *account
		accounts = append(accounts, &copied)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	if offset >= len(accounts) {
		return nil, nil
	}

	end := offset + limit
	if end > len(accounts) {
		end = len(accounts)
	}

	return accounts[offset:end], nil
}

func (r *AccountRepository) getLocked(id string) (*domain.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	copied := *account

	return &copied, nil
}
