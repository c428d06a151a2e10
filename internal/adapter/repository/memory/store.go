// Package memory provides in-memory repository implementations backed by a
// single shared Store. Intended for tests and local development; the postgres
// package is the production store.
package memory

import (
	"sync"

	"github.com/sitebooks/ledger/internal/domain"
)

// Store holds all in-memory state. The repositories returned by its accessors
// share the same maps and mutex.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	entries  map[string][]*domain.Entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		entries:  make(map[string][]*domain.Entry),
	}
}

// AccountRepository returns the account repository view of the store.
func (s *Store) AccountRepository() *AccountRepository {
	return &AccountRepository{store: s}
}

// EntryRepository returns the entry repository view of the store.
func (s *Store) EntryRepository() *EntryRepository {
	return &EntryRepository{store: s}
}

// QueryRepository returns the read-side projection view of the store.
func (s *Store) QueryRepository() *QueryRepository {
	return &QueryRepository{store: s}
}

// TransactionManager returns a no-op transaction manager. The memory store
// relies on the account locker for write serialization, so transactions only
// satisfy the interface.
func (s *Store) TransactionManager() *TransactionManager {
	return &TransactionManager{}
}
