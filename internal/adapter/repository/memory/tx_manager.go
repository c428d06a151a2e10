package memory

import (
	"context"

	"github.com/sitebooks/ledger/internal/usecase"
)

// TransactionManager satisfies usecase.TransactionManager with no-op
// transactions. Atomicity in the memory store comes from the per-call mutex
// and the account locker, not from transactions.
type TransactionManager struct{}

func (m *TransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	return noopTx{}, nil
}

type noopTx struct{}

func (noopTx) Commit(ctx context.Context) error   { return nil }
func (noopTx) Rollback(ctx context.Context) error { return nil }
