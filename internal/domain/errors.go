package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountHalted   = errors.New("account writes halted pending reconciliation")
	ErrKindMismatch    = errors.New("transaction type does not match account kind")

	// Entry errors
	ErrEntryNotFound          = errors.New("entry not found")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInsufficientStock      = errors.New("insufficient stock for issue")

	// Concurrency errors
	ErrConcurrentModification = errors.New("account modified concurrently, retry")

	// Consistency errors. Surfaced, never auto-corrected.
	ErrBalanceDrift = errors.New("running balance diverges from recomputed balance")
)
