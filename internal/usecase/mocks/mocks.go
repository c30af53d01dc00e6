// Package mocks provides hand-rolled test doubles for the usecase
// interfaces. Every mock keeps a small in-memory default behavior and
// exposes Func fields to override individual calls.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc                func(ctx context.Context, account *domain.Account) error
	GetByNumberFunc           func(ctx context.Context, number string) (*domain.Account, error)
	GetByNumbersForUpdateFunc func(ctx context.Context, tx usecase.Transaction, numbers []string) ([]*domain.Account, error)
	UpdateBalanceFunc         func(ctx context.Context, tx usecase.Transaction, number string, balance decimal.Decimal, updatedAt time.Time) error
	ListByOwnerFunc           func(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed stores an account directly, bypassing Create overrides.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Number] = account
}

// Balance returns the stored balance for assertions.
func (m *MockAccountRepository) Balance(number string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[number]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Number] = account
	return nil
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[number]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumbersForUpdate(ctx context.Context, tx usecase.Transaction, numbers []string) ([]*domain.Account, error) {
	if m.GetByNumbersForUpdateFunc != nil {
		return m.GetByNumbersForUpdateFunc(ctx, tx, numbers)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, number := range numbers {
		if acc, ok := m.accounts[number]; ok {
			copied := *acc
			accounts = append(accounts, &copied)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, number string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, number, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[number]; ok {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.OwnerID == ownerID {
			copied := *acc
			accounts = append(accounts, &copied)
		}
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.TransactionRecord

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.TransactionRecord, error)
	ListByAccountFunc func(ctx context.Context, accountNumber string, limit, offset int) ([]*domain.TransactionRecord, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: make(map[string]*domain.TransactionRecord),
	}
}

// Count returns the number of stored records.
func (m *MockTransactionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]*domain.TransactionRecord, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountNumber, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.TransactionRecord
	for _, r := range m.records {
		if r.SourceAccount == accountNumber || r.DestinationAccount == accountNumber {
			records = append(records, r)
		}
	}
	return records, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
// The default Begin serializes transactions behind one mutex, which
// models the store's exclusive row access coarsely but faithfully
// enough for concurrency tests.
type MockTransactionManager struct {
	mu sync.Mutex

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	m.mu.Lock()
	var once sync.Once
	release := func(context.Context) error {
		once.Do(m.mu.Unlock)
		return nil
	}
	return &MockTransaction{CommitFunc: release, RollbackFunc: release}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
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
	return fmt.Sprintf("id-%04d", m.counter)
}

// PassthroughRetrier runs the operation once with no retries.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockNotifier records post-commit notifications.
type MockNotifier struct {
	mu      sync.Mutex
	applied []*domain.TransactionRecord

	TransferAppliedFunc func(record *domain.TransactionRecord)
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) TransferApplied(record *domain.TransactionRecord) {
	if m.TransferAppliedFunc != nil {
		m.TransferAppliedFunc(record)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = append(m.applied, record)
}

// Applied returns the records handed off so far.
func (m *MockNotifier) Applied() []*domain.TransactionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.TransactionRecord(nil), m.applied...)
}
