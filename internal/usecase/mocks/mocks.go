// Package mocks provides hand-rolled test doubles for the usecase interfaces.
// Each mock keeps a small in-memory default behaviour and lets tests override
// individual methods through the exported Func fields.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
	SetHaltedFunc        func(ctx context.Context, id string, halted bool, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, expectedVersion, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if acc.Version != expectedVersion {
		return domain.ErrConcurrentModification
	}
	acc.Balance = balance
	acc.Version++
	acc.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) SetHalted(ctx context.Context, id string, halted bool, updatedAt time.Time) error {
	if m.SetHaltedFunc != nil {
		return m.SetHaltedFunc(ctx, id, halted, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Halted = halted
	acc.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if kind != nil && acc.Kind != *kind {
			continue
		}
		copied := *acc
		accounts = append(accounts, &copied)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	if offset >= len(accounts) {
		return nil, nil
	}
	end := offset + limit
	if end > len(accounts) {
		end = len(accounts)
	}
	return accounts[offset:end], nil
}

// MockEntryRepository is a mock implementation of EntryRepository. The
// default behaviour enforces the append-only seq discipline: an append with a
// seq that is not exactly the next one fails with ErrConcurrentModification.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string][]*domain.Entry

	AppendFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	LatestFunc        func(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Entry, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	ListBySeqFunc     func(ctx context.Context, accountID string, afterSeq int64, limit int) ([]*domain.Entry, error)
	BalanceAtFunc     func(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string][]*domain.Entry),
	}
}

func (m *MockEntryRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.entries[entry.AccountID]
	if entry.Seq != int64(len(existing))+1 {
		return domain.ErrConcurrentModification
	}
	m.entries[entry.AccountID] = append(existing, entry)
	return nil
}

func (m *MockEntryRepository) Latest(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Entry, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, tx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	existing := m.entries[accountID]
	if len(existing) == 0 {
		return nil, domain.ErrEntryNotFound
	}
	return existing[len(existing)-1], nil
}

func (m *MockEntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	existing := m.entries[accountID]
	ordered := make([]*domain.Entry, len(existing))
	copy(ordered, existing)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].OccurredAt.Equal(ordered[j].OccurredAt) {
			return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
		}
		return ordered[i].Seq < ordered[j].Seq
	})
	if offset >= len(ordered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], nil
}

func (m *MockEntryRepository) ListBySeq(ctx context.Context, accountID string, afterSeq int64, limit int) ([]*domain.Entry, error) {
	if m.ListBySeqFunc != nil {
		return m.ListBySeqFunc(ctx, accountID, afterSeq, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var page []*domain.Entry
	for _, e := range m.entries[accountID] {
		if e.Seq > afterSeq {
			page = append(page, e)
			if len(page) == limit {
				break
			}
		}
	}
	return page, nil
}

func (m *MockEntryRepository) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	if m.BalanceAtFunc != nil {
		return m.BalanceAtFunc(ctx, accountID, at)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	balance := decimal.Zero
	for _, e := range m.entries[accountID] {
		if !e.OccurredAt.After(at) {
			balance = balance.Add(e.Delta)
		}
	}
	return balance, nil
}

// Seed installs entries directly, bypassing the seq check.
func (m *MockEntryRepository) Seed(accountID string, entries ...*domain.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[accountID] = append(m.entries[accountID], entries...)
}

// MockQueryRepository is a mock implementation of QueryRepository.
type MockQueryRepository struct {
	SummaryFunc   func(ctx context.Context, accountID string) (*domain.AccountSummary, error)
	SummariesFunc func(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.AccountSummary, error)
	OverdueFunc   func(ctx context.Context, now time.Time, limit, offset int) ([]*domain.AccountSummary, error)
	LowStockFunc  func(ctx context.Context, limit, offset int) ([]*domain.AccountSummary, error)

	SummaryCalls int
}

func NewMockQueryRepository() *MockQueryRepository {
	return &MockQueryRepository{}
}

func (m *MockQueryRepository) Summary(ctx context.Context, accountID string) (*domain.AccountSummary, error) {
	m.SummaryCalls++
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, accountID)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockQueryRepository) Summaries(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.AccountSummary, error) {
	if m.SummariesFunc != nil {
		return m.SummariesFunc(ctx, kind, limit, offset)
	}
	return nil, nil
}

func (m *MockQueryRepository) Overdue(ctx context.Context, now time.Time, limit, offset int) ([]*domain.AccountSummary, error) {
	if m.OverdueFunc != nil {
		return m.OverdueFunc(ctx, now, limit, offset)
	}
	return nil, nil
}

func (m *MockQueryRepository) LowStock(ctx context.Context, limit, offset int) ([]*domain.AccountSummary, error) {
	if m.LowStockFunc != nil {
		return m.LowStockFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu    sync.Mutex
	Begun []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.mu.Lock()
	m.Begun = append(m.Begun, tx)
	m.mu.Unlock()
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + string(rune('a'+m.counter-1))
}

// MockLocker is an in-process keyed mutex implementation of AccountLocker.
type MockLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex

	Acquisitions int
}

func NewMockLocker() *MockLocker {
	return &MockLocker{locks: make(map[string]*sync.Mutex)}
}

func (m *MockLocker) Acquire(ctx context.Context, accountID string) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[accountID] = l
	}
	m.Acquisitions++
	m.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}

// MockCache is an in-memory implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	Deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}

// MockClock is a fixed clock.
type MockClock struct {
	Time time.Time
}

func (c *MockClock) Now() time.Time {
	return c.Time
}
