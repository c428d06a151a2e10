package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/infrastructure/metrics"
)

// RecorderUseCase is the only write path into a ledger. It serializes
// concurrent writers per account, derives the new running balance from the
// latest entry and appends atomically. A concurrent modification is retried
// a bounded number of times before surfacing.
type RecorderUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	balance     *BalanceUseCase
	locker      AccountLocker
	idGen       IDGenerator
	clock       Clock
	cache       Cache
}

// NewRecorderUseCase creates a new RecorderUseCase. locker and cache may be
// nil: locker is unnecessary when the store serializes with row locks, cache
// only speeds up summaries.
func NewRecorderUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	balance *BalanceUseCase,
	locker AccountLocker,
	idGen IDGenerator,
	clock Clock,
	cache Cache,
) *RecorderUseCase {
	if clock == nil {
		clock = UTCClock{}
	}

	return &RecorderUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		balance:     balance,
		locker:      locker,
		idGen:       idGen,
		clock:       clock,
		cache:       cache,
	}
}

// RecordInput describes one transaction to append.
type RecordInput struct {
	AccountID   string
	Type        domain.TransactionType
	Amount      decimal.Decimal
	OccurredAt  *time.Time
	DueDate     *time.Time
	Reference   string
	Description string
	CreatedBy   string
	// AllowBackorder lets an inventory issue drive the quantity negative.
	AllowBackorder bool
}

// Record validates the input, serializes against concurrent writers for the
// same account and appends the entry. A backdated OccurredAt still receives
// the next seq: it is appended at the end of the chain, never reinserted into
// the middle, because balance_after is immutable history.
func (uc *RecorderUseCase) Record(ctx context.Context, input RecordInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	delta, err := input.Type.Delta(input.Amount)
	if err != nil {
		return nil, err
	}

	var entry *domain.Entry

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond

	err = backoff.Retry(func() error {
		var opErr error

		entry, opErr = uc.recordOnce(ctx, input, delta)
		if opErr == nil {
			return nil
		}

		if errors.Is(opErr, domain.ErrConcurrentModification) {
			metrics.RecordRetry()
			return opErr
		}

		return backoff.Permanent(opErr)
	}, backoff.WithContext(backoff.WithMaxRetries(b, MaxRecordRetries), ctx))
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *RecorderUseCase) recordOnce(ctx context.Context, input RecordInput, delta decimal.Decimal) (*domain.Entry, error) {
	if uc.locker != nil {
		release, err := uc.locker.Acquire(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.Halted {
		return nil, domain.ErrAccountHalted
	}

	if err := account.AcceptsType(input.Type); err != nil {
		return nil, err
	}

	lastSeq := int64(0)
	lastBalance := decimal.Zero

	latest, err := uc.entryRepo.Latest(ctx, tx, input.AccountID)
	switch {
	case err == nil:
		lastSeq = latest.Seq
		lastBalance = latest.BalanceAfter
	case errors.Is(err, domain.ErrEntryNotFound):
		// First entry for the account.
	default:
		return nil, err
	}

	// The cached balance must match the chain head. A mismatch means a
	// concurrency or logic bug already corrupted the account; refuse to
	// compound it.
	if !account.Balance.Equal(lastBalance) {
		return nil, fmt.Errorf("%w: account %s cached %s, chain head %s",
			domain.ErrBalanceDrift, account.ID, account.Balance, lastBalance)
	}

	if err := account.ValidateIssue(delta, input.AllowBackorder); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	newBalance := uc.balance.Incremental(lastBalance, delta)

	entry := &domain.Entry{
		ID:           uc.idGen.Generate(),
		AccountID:    account.ID,
		Seq:          lastSeq + 1,
		Type:         input.Type,
		Amount:       input.Amount,
		Delta:        delta,
		BalanceAfter: newBalance,
		OccurredAt:   occurredAt,
		RecordedAt:   now,
		DueDate:      input.DueDate,
		Reference:    input.Reference,
		Description:  input.Description,
		CreatedBy:    input.CreatedBy,
	}

	if err := uc.entryRepo.Append(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidateSummary(ctx, account.ID)

	return entry, nil
}

func (uc *RecorderUseCase) invalidateSummary(ctx context.Context, accountID string) {
	if uc.cache == nil {
		return
	}

	// Best effort: a stale summary expires on its own TTL.
	_ = uc.cache.Delete(ctx, SummaryCacheKey(accountID))
}

// SummaryCacheKey is the cache key for an account's summary projection.
func SummaryCacheKey(accountID string) string {
	return "summary:" + accountID
}
