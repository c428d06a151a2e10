package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
)

// BalanceUseCase derives balances from the entry sequence. Incremental is the
// O(1) path the recorder takes on every append; Recompute replays the full
// history and is the reconciliation authority the incremental value is
// checked against.
type BalanceUseCase struct {
	entryRepo EntryRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(entryRepo EntryRepository) *BalanceUseCase {
	return &BalanceUseCase{entryRepo: entryRepo}
}

// Incremental applies one delta to the last known balance.
func (uc *BalanceUseCase) Incremental(lastBalance, delta decimal.Decimal) decimal.Decimal {
	return lastBalance.Add(delta)
}

// Recompute folds deltas over the account's entire entry sequence in seq
// order, verifying the chain invariants while replaying. Returns the final
// balance and the number of entries folded.
func (uc *BalanceUseCase) Recompute(ctx context.Context, accountID string) (decimal.Decimal, int64, error) {
	balance := decimal.Zero

	var count, afterSeq int64
	for {
		page, err := uc.entryRepo.ListBySeq(ctx, accountID, afterSeq, RecomputePageSize)
		if err != nil {
			return decimal.Zero, 0, err
		}

		if len(page) == 0 {
			break
		}

		for _, e := range page {
			if e.Seq != afterSeq+1 {
				return decimal.Zero, 0, domain.ErrBalanceDrift
			}

			balance = balance.Add(e.Delta)
			if !e.BalanceAfter.Equal(balance) {
				return decimal.Zero, 0, domain.ErrBalanceDrift
			}

			afterSeq = e.Seq
			count++
		}

		if len(page) < RecomputePageSize {
			break
		}
	}

	return balance, count, nil
}

// BalanceAt returns the balance as of a business date, folding entries with
// occurred_at at or before the given instant.
func (uc *BalanceUseCase) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	return uc.entryRepo.BalanceAt(ctx, accountID, at)
}
