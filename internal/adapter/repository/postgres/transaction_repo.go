package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const recordColumns = `id, type, amount, source_account, destination_account, description, status, created_at`

// Create writes a transaction record inside the given transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (id, type, amount, source_account, destination_account, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID,
		record.Type,
		decimalToNumeric(record.Amount),
		record.SourceAccount,
		record.DestinationAccount,
		record.Description,
		record.Status,
		timeToPgTimestamptz(record.CreatedAt),
	)

	return wrapStoreError(err)
}

// GetByID retrieves a transaction record by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM transactions
		WHERE id = $1`,
		id,
	)

	return scanRecord(row)
}

// ListByAccount lists records where the account is either side,
// newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM transactions
		WHERE source_account = $1 OR destination_account = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		accountNumber,
		int32(limit),
		int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.TransactionRecord, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	var (
		record    domain.TransactionRecord
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&record.ID,
		&record.Type,
		&amount,
		&record.SourceAccount,
		&record.DestinationAccount,
		&record.Description,
		&record.Status,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	record.Amount = numericToDecimal(amount)
	record.CreatedAt = createdAt.Time

	return &record, nil
}
