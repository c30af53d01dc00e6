package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
)

// AccountUseCase handles account provisioning and reads.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	creditFloor decimal.Decimal
}

// NewAccountUseCase creates a new AccountUseCase. creditFloor is the
// pluggable balance floor applied to new credit-class accounts.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, creditFloor decimal.Decimal) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		creditFloor: creditFloor,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	OwnerID string
	Class   domain.AccountClass
}

// OpenAccount provisions a new account for the owner. Non-credit
// classes get a zero floor.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if !input.Class.IsValid() {
		return nil, domain.ErrInvalidClass
	}

	floor := decimal.Zero
	if input.Class == domain.ClassCredit {
		floor = uc.creditFloor
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Number:    uc.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Class:     input.Class,
		Balance:   decimal.Zero,
		Floor:     floor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccounts lists the owner's accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error) {
	limit, offset = clampPage(limit, offset)
	return uc.accountRepo.ListByOwner(ctx, ownerID, limit, offset)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
