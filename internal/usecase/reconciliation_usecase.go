package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
)

// ReconciliationUseCase compares each account's cached running balance
// against a full recompute from its entry sequence. Divergence is never
// corrected automatically: the account is halted for writes and the drift is
// surfaced, since continuing would compound a silent miscalculation.
type ReconciliationUseCase struct {
	accountRepo AccountRepository
	balance     *BalanceUseCase
	clock       Clock
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(accountRepo AccountRepository, balance *BalanceUseCase, clock Clock) *ReconciliationUseCase {
	if clock == nil {
		clock = UTCClock{}
	}

	return &ReconciliationUseCase{
		accountRepo: accountRepo,
		balance:     balance,
		clock:       clock,
	}
}

// ReconciliationResult represents the outcome of one account check.
type ReconciliationResult struct {
	AccountID       string
	RecordedBalance decimal.Decimal
	ComputedBalance decimal.Decimal
	Difference      decimal.Decimal
	EntryCount      int64
	Reconciled      bool
	CheckedAt       time.Time
}

// ReconcileAccount replays the account's full history and compares it to the
// cached balance. On drift the account is halted and the error wraps
// domain.ErrBalanceDrift; the result is still returned for reporting.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	computed, count, err := uc.balance.Recompute(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceDrift) {
			uc.halt(ctx, account, now)

			return &ReconciliationResult{
				AccountID:       accountID,
				RecordedBalance: account.Balance,
				ComputedBalance: decimal.Zero,
				Difference:      account.Balance,
				Reconciled:      false,
				CheckedAt:       now,
			}, fmt.Errorf("account %s: %w", accountID, err)
		}

		return nil, err
	}

	result := &ReconciliationResult{
		AccountID:       accountID,
		RecordedBalance: account.Balance,
		ComputedBalance: computed,
		Difference:      account.Balance.Sub(computed),
		EntryCount:      count,
		Reconciled:      account.Balance.Equal(computed),
		CheckedAt:       now,
	}

	if !result.Reconciled {
		uc.halt(ctx, account, now)

		return result, fmt.Errorf("account %s: recorded %s, recomputed %s: %w",
			accountID, account.Balance, computed, domain.ErrBalanceDrift)
	}

	return result, nil
}

// ReconciliationReport aggregates a run over all accounts.
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	CheckedAt          time.Time
}

// ReconcileAll checks every account. Drift on one account does not stop the
// run; discrepancies are collected into the report.
func (uc *ReconciliationUseCase) ReconcileAll(ctx context.Context) (*ReconciliationReport, error) {
	report := &ReconciliationReport{
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     uc.clock.Now(),
	}

	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		accounts, err := uc.accountRepo.List(ctx, nil, pageSize, offset)
		if err != nil {
			return nil, err
		}

		if len(accounts) == 0 {
			break
		}

		for _, account := range accounts {
			result, err := uc.ReconcileAccount(ctx, account.ID)
			if err != nil && !errors.Is(err, domain.ErrBalanceDrift) {
				return nil, fmt.Errorf("failed to reconcile account %s: %w", account.ID, err)
			}

			report.TotalAccounts++
			if result.Reconciled {
				report.ReconciledAccounts++
			} else {
				report.Discrepancies = append(report.Discrepancies, result)
			}
		}

		if len(accounts) < pageSize {
			break
		}
	}

	return report, nil
}

// Resume clears a halt after an operator has investigated. The account only
// resumes if the cached balance now agrees with a fresh recompute.
func (uc *ReconciliationUseCase) Resume(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	computed, count, err := uc.balance.Recompute(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.Balance.Equal(computed) {
		return nil, fmt.Errorf("account %s still diverged, refusing to resume: %w",
			accountID, domain.ErrBalanceDrift)
	}

	if err := uc.accountRepo.SetHalted(ctx, accountID, false, now); err != nil {
		return nil, err
	}

	return &ReconciliationResult{
		AccountID:       accountID,
		RecordedBalance: account.Balance,
		ComputedBalance: computed,
		Difference:      decimal.Zero,
		EntryCount:      count,
		Reconciled:      true,
		CheckedAt:       now,
	}, nil
}

func (uc *ReconciliationUseCase) halt(ctx context.Context, account *domain.Account, now time.Time) {
	if account.Halted {
		return
	}

	// Halting is best effort here; the drift error is surfaced regardless.
	_ = uc.accountRepo.SetHalted(ctx, account.ID, true, now)
}
