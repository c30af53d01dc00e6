package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
)

// ErrStoreRejected marks a write the store refused for a business
// reason the engine did not anticipate (constraint violation). It maps
// to the generic transaction-error outcome, not a store failure.
var ErrStoreRejected = errors.New("write rejected by store")

// TransferUseCase applies validated transfer requests as single
// indivisible units against the account store.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	recordRepo  TransactionRepository
	idGen       IDGenerator
	retrier     Retrier
	notifier    TransferNotifier
	ceiling     decimal.Decimal
	logger      zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	recordRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
	notifier TransferNotifier,
	ceiling decimal.Decimal,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		recordRepo:  recordRepo,
		idGen:       idGen,
		retrier:     retrier,
		notifier:    notifier,
		ceiling:     ceiling,
		logger:      logger,
	}
}

// TransferInput carries a validated request plus the authenticated
// principal on whose behalf it runs. The principal is an explicit
// parameter, never ambient state.
type TransferInput struct {
	Principal string
	Request   *domain.TransferRequest
}

// Transfer applies the request atomically. Business rejections are
// returned inside the outcome; the error return is reserved for
// infrastructural store failures, whose result is unknown to the
// caller.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferOutcome, error) {
	req := input.Request

	// Cheap rejections before any lock is taken.
	if reason, ok := uc.checkRules(req); !ok {
		return domain.Rejected(reason), nil
	}

	var (
		outcome *domain.TransferOutcome
		record  *domain.TransactionRecord
	)

	err := uc.retrier.Retry(ctx, func() error {
		var opErr error
		outcome, record, opErr = uc.transferOnce(ctx, req)
		return opErr
	})
	if err != nil {
		if errors.Is(err, ErrStoreRejected) {
			return domain.Rejected(domain.ReasonTransactionError), nil
		}
		return nil, err
	}

	uc.logger.Info().
		Str("principal", input.Principal).
		Str("source", req.SourceAccount).
		Str("destination", req.DestinationAccount).
		Str("amount", req.Amount.String()).
		Str("reason", outcome.Reason.String()).
		Msg("transfer processed")

	// Post-commit handoff: the dispatcher runs outside the atomicity
	// boundary and cannot change the outcome.
	if outcome.Applied() && uc.notifier != nil {
		uc.notifier.TransferApplied(record)
	}

	return outcome, nil
}

// checkRules evaluates the business rules that need no account state.
func (uc *TransferUseCase) checkRules(req *domain.TransferRequest) (domain.Reason, bool) {
	switch {
	case req.SourceAccount == req.DestinationAccount:
		return domain.ReasonSameAccount, false
	case req.Amount.LessThanOrEqual(decimal.Zero):
		return domain.ReasonInvalidAmount, false
	case req.Amount.GreaterThan(uc.ceiling):
		return domain.ReasonLimitExceeded, false
	}
	return domain.ReasonSuccess, true
}

// transferOnce runs one attempt of the locked check-and-mutate step.
// Once inside, it runs to completion; there is no mid-flight abort.
func (uc *TransferUseCase) transferOnce(ctx context.Context, req *domain.TransferRequest) (*domain.TransferOutcome, *domain.TransactionRecord, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both rows in ascending number order regardless of which side
	// is source: two opposite transfers over the same pair can never
	// deadlock.
	numbers := []string{req.SourceAccount, req.DestinationAccount}
	sort.Strings(numbers)

	accounts, err := uc.accountRepo.GetByNumbersForUpdate(ctx, tx, numbers)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Rejected(domain.ReasonAccountNotFound), nil, nil
		}
		return nil, nil, err
	}
	if len(accounts) != len(numbers) {
		return domain.Rejected(domain.ReasonAccountNotFound), nil, nil
	}

	var source, dest *domain.Account
	for _, a := range accounts {
		switch a.Number {
		case req.SourceAccount:
			source = a
		case req.DestinationAccount:
			dest = a
		}
	}
	if source == nil || dest == nil {
		return domain.Rejected(domain.ReasonAccountNotFound), nil, nil
	}

	// Re-validate under lock; nothing mutates until every rule passes.
	if reason, ok := uc.checkRules(req); !ok {
		return domain.Rejected(reason), nil, nil
	}
	if err := source.ValidateDebit(req.Amount); err != nil {
		return domain.Rejected(domain.ReasonInsufficientFunds), nil, nil
	}

	now := time.Now().UTC()
	record := &domain.TransactionRecord{
		ID:                 uc.idGen.Generate(),
		Type:               domain.RecordTypeTransfer,
		Amount:             req.Amount,
		SourceAccount:      source.Number,
		DestinationAccount: dest.Number,
		Description:        req.Description,
		Status:             domain.RecordStatusCompleted,
		CreatedAt:          now,
	}

	if err := uc.recordRepo.Create(ctx, tx, record); err != nil {
		return nil, nil, err
	}
	if err := uc.accountRepo.UpdateBalance(ctx, tx, source.Number, source.ApplyDebit(req.Amount), now); err != nil {
		return nil, nil, err
	}
	if err := uc.accountRepo.UpdateBalance(ctx, tx, dest.Number, dest.ApplyCredit(req.Amount), now); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return domain.Applied(record.ID), record, nil
}
