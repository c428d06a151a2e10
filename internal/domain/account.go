package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account owns one ledger: a supplier (financial) or a material+location
// (inventory). Balance is a cached copy of the latest entry's BalanceAfter;
// the entry sequence is the source of truth and reconciliation compares the two.
type Account struct {
	ID        string
	Name      string
	Kind      AccountKind
	Balance   decimal.Decimal
	Version   int64
	Halted    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Inventory thresholds. Zero values mean "not set" for the maximum;
	// minimum and reorder point default to zero.
	MinimumStockLevel decimal.Decimal
	MaximumStockLevel decimal.Decimal
	ReorderPoint      decimal.Decimal
}

// AcceptsType checks that a transaction type belongs to this account's ledger.
func (a *Account) AcceptsType(t TransactionType) error {
	if t.Kind() != a.Kind {
		return ErrKindMismatch
	}

	return nil
}

// ValidateIssue checks that an inventory withdrawal would not drive stock
// negative. allowBackorder is the explicit per-request override.
func (a *Account) ValidateIssue(delta decimal.Decimal, allowBackorder bool) error {
	if a.Kind != KindInventory {
		return nil
	}

	if allowBackorder {
		return nil
	}

	if a.Balance.Add(delta).IsNegative() {
		return ErrInsufficientStock
	}

	return nil
}

// ReorderTriggered reports whether the current quantity has reached the
// reorder point. The reorder point may be stricter than the minimum level.
func (a *Account) ReorderTriggered() bool {
	if a.Kind != KindInventory || a.ReorderPoint.IsZero() {
		return false
	}

	return a.Balance.LessThanOrEqual(a.ReorderPoint)
}
