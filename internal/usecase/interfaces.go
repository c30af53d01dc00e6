package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	// GetByNumbersForUpdate locks the accounts for the duration of the
	// transaction. Callers must pass numbers in ascending order so every
	// transfer acquires locks in the same global order.
	GetByNumbersForUpdate(ctx context.Context, tx Transaction, numbers []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, number string, balance decimal.Decimal, updatedAt time.Time) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error)
}

// TransactionRepository defines data access for transaction records.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.TransactionRecord) error
	GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error)
	ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]*domain.TransactionRecord, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when the store reports a transient
// failure (deadlock, serialization conflict).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// TransferNotifier receives post-commit notification requests. It must
// never block: delivery is best-effort and outside the transfer's
// atomicity boundary.
type TransferNotifier interface {
	TransferApplied(record *domain.TransactionRecord)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
