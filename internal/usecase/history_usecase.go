package usecase

import (
	"context"

	"github.com/vbalan/bankcore/internal/domain"
)

// HistoryUseCase serves read-only transaction listings. It takes no
// locks and never mutates state.
type HistoryUseCase struct {
	recordRepo TransactionRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(recordRepo TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{recordRepo: recordRepo}
}

// AccountActivity is a record tagged with its direction relative to
// the viewing account.
type AccountActivity struct {
	Record    *domain.TransactionRecord
	Direction domain.Direction
}

// ListByAccount lists records touching the account, newest first,
// each tagged sent or received from the account's point of view.
func (uc *HistoryUseCase) ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]AccountActivity, error) {
	limit, offset = clampPage(limit, offset)

	records, err := uc.recordRepo.ListByAccount(ctx, accountNumber, limit, offset)
	if err != nil {
		return nil, err
	}

	activity := make([]AccountActivity, len(records))
	for i, r := range records {
		activity[i] = AccountActivity{
			Record:    r,
			Direction: r.DirectionFor(accountNumber),
		}
	}

	return activity, nil
}

// GetRecord retrieves a single transaction record by ID.
func (uc *HistoryUseCase) GetRecord(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	return uc.recordRepo.GetByID(ctx, id)
}
