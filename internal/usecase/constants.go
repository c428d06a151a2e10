package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	// This prevents long-running transactions from blocking tables.
	DefaultTransactionTimeout = 10 * time.Second

	// MaxRecordRetries bounds internal retries of a record operation after a
	// concurrent modification before the error surfaces to the caller.
	MaxRecordRetries = 3

	// RecomputePageSize is how many entries the calculator replays per fetch.
	RecomputePageSize = 500

	// SummaryCacheTTL is how long cached summaries live without an append.
	SummaryCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
