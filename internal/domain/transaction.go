package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountKind separates the two ledger families. A financial ledger tracks
// what is owed to a supplier; an inventory ledger tracks quantity on hand for
// a material at a location.
type AccountKind string

const (
	KindFinancial AccountKind = "financial"
	KindInventory AccountKind = "inventory"
)

// Valid reports whether the kind is one of the known values.
func (k AccountKind) Valid() bool {
	return k == KindFinancial || k == KindInventory
}

// TransactionType identifies a ledger operation. Each type carries a fixed
// sign; callers always submit magnitudes and the type decides the direction.
type TransactionType string

// Financial types.
const (
	TypePurchase         TransactionType = "PURCHASE"
	TypePayment          TransactionType = "PAYMENT"
	TypeAdjustmentDebit  TransactionType = "ADJUSTMENT_DEBIT"
	TypeAdjustmentCredit TransactionType = "ADJUSTMENT_CREDIT"
)

// Inventory types.
const (
	TypeIssue       TransactionType = "ISSUE"
	TypeReturn      TransactionType = "RETURN"
	TypeRestock     TransactionType = "RESTOCK"
	TypeConsumption TransactionType = "CONSUMPTION"
	// TypeAdjustment is the stock-take correction; it is the only type whose
	// amount is signed by the caller, and zero is a valid amount for it.
	TypeAdjustment TransactionType = "ADJUSTMENT"
)

// transactionSigns fixes the direction each type moves the balance.
// +1 increases, -1 decreases, 0 means the amount is taken as signed.
var transactionSigns = map[TransactionType]int{
	TypePurchase:         +1,
	TypePayment:          -1,
	TypeAdjustmentDebit:  +1,
	TypeAdjustmentCredit: -1,
	TypeIssue:            -1,
	TypeReturn:           +1,
	TypeRestock:          +1,
	TypeConsumption:      -1,
	TypeAdjustment:       0,
}

var transactionKinds = map[TransactionType]AccountKind{
	TypePurchase:         KindFinancial,
	TypePayment:          KindFinancial,
	TypeAdjustmentDebit:  KindFinancial,
	TypeAdjustmentCredit: KindFinancial,
	TypeIssue:            KindInventory,
	TypeReturn:           KindInventory,
	TypeRestock:          KindInventory,
	TypeConsumption:      KindInventory,
	TypeAdjustment:       KindInventory,
}

// ParseTransactionType converts a wire string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, s)
	}

	return t, nil
}

// Valid reports whether the type is known.
func (t TransactionType) Valid() bool {
	_, ok := transactionSigns[t]

	return ok
}

// Kind returns the ledger family the type belongs to.
func (t TransactionType) Kind() AccountKind {
	return transactionKinds[t]
}

// Delta converts a submitted amount into the signed balance movement.
// Amounts must be strictly positive except for the signed ADJUSTMENT type,
// which accepts any value including zero.
func (t TransactionType) Delta(amount decimal.Decimal) (decimal.Decimal, error) {
	sign, ok := transactionSigns[t]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownTransactionType, t)
	}

	if sign == 0 {
		return amount, nil
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s requires a positive amount, got %s",
			ErrInvalidAmount, t, amount)
	}

	if sign < 0 {
		return amount.Neg(), nil
	}

	return amount, nil
}
