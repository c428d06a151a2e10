package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks -mock_names AccountRepository=GomockAccountRepository,EntryRepository=GomockEntryRepository,QueryRepository=GomockQueryRepository github.com/sitebooks/ledger/internal/usecase AccountRepository,EntryRepository,QueryRepository

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByIDForUpdate reads the account inside tx holding its row lock,
	// serializing concurrent writers for the same account.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	// UpdateBalance persists the cached running balance. expectedVersion is
	// an optimistic guard: a mismatch means another writer got in between
	// and must surface as domain.ErrConcurrentModification.
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
	SetHalted(ctx context.Context, id string, halted bool, updatedAt time.Time) error
	List(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.Account, error)
}

// EntryRepository defines data access for ledger entries. Entries are
// append-only; no update or delete methods exist by design.
type EntryRepository interface {
	// Append writes the entry. A duplicate (account_id, seq) pair must fail
	// with domain.ErrConcurrentModification.
	Append(ctx context.Context, tx Transaction, entry *domain.Entry) error
	// Latest returns the newest entry by seq, or domain.ErrEntryNotFound
	// when the account has no entries. When tx is non-nil the read happens
	// inside it.
	Latest(ctx context.Context, tx Transaction, accountID string) (*domain.Entry, error)
	// ListByAccount returns entries ordered by (occurred_at, seq) for
	// display. Backdated entries appear in chronological position here even
	// though their seq places them at the end of the chain.
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	// ListBySeq returns up to limit entries with seq > afterSeq in seq
	// order. This is the restartable feed the calculator replays.
	ListBySeq(ctx context.Context, accountID string, afterSeq int64, limit int) ([]*domain.Entry, error)
	// BalanceAt folds deltas of entries with occurred_at <= at.
	BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

// QueryRepository serves the aggregate read-side projections. Implementations
// must use the same ordering and sign conventions as the calculator.
type QueryRepository interface {
	Summary(ctx context.Context, accountID string) (*domain.AccountSummary, error)
	Summaries(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.AccountSummary, error)
	// Overdue lists financial accounts with an outstanding balance whose
	// latest purchase due date precedes now.
	Overdue(ctx context.Context, now time.Time, limit, offset int) ([]*domain.AccountSummary, error)
	// LowStock lists inventory accounts at or below their reorder point or
	// minimum stock level.
	LowStock(ctx context.Context, limit, offset int) ([]*domain.AccountSummary, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// AccountLocker serializes writers per account across process boundaries.
// Stores that serialize with row locks can use a no-op implementation.
type AccountLocker interface {
	// Acquire blocks until the account lock is held and returns the release
	// function. Release must be called exactly once.
	Acquire(ctx context.Context, accountID string) (release func(), err error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock abstracts time for status derivation and tests.
type Clock interface {
	Now() time.Time
}

// Cache defines caching operations for query projections.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
