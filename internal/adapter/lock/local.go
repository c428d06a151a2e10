// Package lock provides AccountLocker implementations: an in-process keyed
// mutex for single-instance deployments and a redislock-backed locker for
// fleets sharing one database.
package lock

import (
	"context"
	"sync"
)

// Local serializes writers per account within one process using a keyed
// mutex. Mutexes are created on first use and never reclaimed; the account
// space is small enough that this does not matter.
type Local struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocal creates a new Local locker.
func NewLocal() *Local {
	return &Local{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the per-account mutex is held.
func (l *Local) Acquire(ctx context.Context, accountID string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()

	m.Lock()

	return m.Unlock, nil
}
