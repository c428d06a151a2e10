package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus classifies a financial account. Derived, never stored.
type PaymentStatus string

const (
	PaymentNoActivity PaymentStatus = "NO_ACTIVITY"
	PaymentPending    PaymentStatus = "PENDING"
	PaymentPartial    PaymentStatus = "PARTIAL"
	PaymentPaid       PaymentStatus = "PAID"
	// PaymentOverdue is a presentation-time overlay: it depends on the
	// caller's clock, so it is computed on every read and never cached.
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// StockStatus classifies an inventory account against its thresholds.
type StockStatus string

const (
	StockNoActivity StockStatus = "NO_ACTIVITY"
	StockLow        StockStatus = "LOW"
	StockNormal     StockStatus = "NORMAL"
	StockHigh       StockStatus = "HIGH"
)

// BalanceFacts are the inputs status derivation needs beyond the account
// itself. They are computed from the ordered entry sequence.
type BalanceFacts struct {
	EntryCount int64
	// PaymentSinceLastPurchase is true when at least one PAYMENT entry was
	// appended after the most recent PURCHASE.
	PaymentSinceLastPurchase bool
	// NextDueDate is the due date of the most recent purchase that carries
	// one, nil when no purchase has payment terms.
	NextDueDate *time.Time
}

// FactsFromEntries derives BalanceFacts by scanning entries in Seq order.
func FactsFromEntries(entries []*Entry) BalanceFacts {
	facts := BalanceFacts{EntryCount: int64(len(entries))}

	lastPurchase := -1
	for i, e := range entries {
		if e.Type == TypePurchase {
			lastPurchase = i
			if e.DueDate != nil {
				facts.NextDueDate = e.DueDate
			}
		}
	}

	if lastPurchase >= 0 {
		for _, e := range entries[lastPurchase+1:] {
			if e.Type == TypePayment {
				facts.PaymentSinceLastPurchase = true
				break
			}
		}
	}

	return facts
}

// ResolvePaymentStatus maps a financial balance and its facts to a status at
// the given instant. Balance is what is owed to the supplier.
func ResolvePaymentStatus(balance decimal.Decimal, facts BalanceFacts, now time.Time) PaymentStatus {
	if facts.EntryCount == 0 {
		return PaymentNoActivity
	}

	if balance.LessThanOrEqual(decimal.Zero) {
		return PaymentPaid
	}

	if facts.NextDueDate != nil && facts.NextDueDate.Before(now) {
		return PaymentOverdue
	}

	if facts.PaymentSinceLastPurchase {
		return PaymentPartial
	}

	return PaymentPending
}

// ResolveStockStatus maps a quantity to a status against the account's
// thresholds. A zero MaximumStockLevel means no upper bound.
func ResolveStockStatus(quantity decimal.Decimal, a *Account, entryCount int64) StockStatus {
	if entryCount == 0 {
		return StockNoActivity
	}

	if quantity.LessThanOrEqual(a.MinimumStockLevel) {
		return StockLow
	}

	if !a.MaximumStockLevel.IsZero() && quantity.GreaterThanOrEqual(a.MaximumStockLevel) {
		return StockHigh
	}

	return StockNormal
}
