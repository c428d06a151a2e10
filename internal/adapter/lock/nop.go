package lock

import "context"

// Nop is an AccountLocker that never blocks. Used when the store's own row
// locks already serialize writers.
type Nop struct{}

// NewNop creates a new Nop locker.
func NewNop() Nop {
	return Nop{}
}

// Acquire returns immediately.
func (Nop) Acquire(ctx context.Context, accountID string) (func(), error) {
	return func() {}, nil
}
