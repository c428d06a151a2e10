package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummary is the aggregate read-side projection for one account.
// Totals use the same sign conventions as the balance calculator: debits are
// the sum of positive deltas, credits the magnitude of negative deltas.
type AccountSummary struct {
	AccountID         string
	Name              string
	Kind              AccountKind
	Balance           decimal.Decimal
	TotalDebits       decimal.Decimal
	TotalCredits      decimal.Decimal
	EntryCount        int64
	LastTransactionAt *time.Time
	Halted            bool

	Facts BalanceFacts

	MinimumStockLevel decimal.Decimal
	MaximumStockLevel decimal.Decimal
	ReorderPoint      decimal.Decimal
}

// Status derives the account's status at the given instant. Financial
// accounts resolve to a payment status, inventory accounts to a stock status.
func (s *AccountSummary) Status(now time.Time) string {
	if s.Kind == KindInventory {
		acc := &Account{
			Kind:              KindInventory,
			MinimumStockLevel: s.MinimumStockLevel,
			MaximumStockLevel: s.MaximumStockLevel,
			ReorderPoint:      s.ReorderPoint,
		}

		return string(ResolveStockStatus(s.Balance, acc, s.EntryCount))
	}

	return string(ResolvePaymentStatus(s.Balance, s.Facts, now))
}

// ReorderTriggered reports whether an inventory account has reached its
// reorder point.
func (s *AccountSummary) ReorderTriggered() bool {
	if s.Kind != KindInventory || s.ReorderPoint.IsZero() {
		return false
	}

	return s.Balance.LessThanOrEqual(s.ReorderPoint)
}
