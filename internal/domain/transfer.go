package domain

import (
	"github.com/shopspring/decimal"
)

// TransferRequest is a validated, immutable request to move funds
// between two accounts. Construct it with NewTransferRequest.
type TransferRequest struct {
	SourceAccount      string
	DestinationAccount string
	Amount             decimal.Decimal
	Description        string
}

// Reason is the enumerated cause attached to a transfer outcome.
type Reason int

const (
	ReasonSuccess Reason = iota
	ReasonSameAccount
	ReasonInvalidAmount
	ReasonLimitExceeded
	ReasonInsufficientFunds
	ReasonAccountNotFound
	ReasonTransactionError
	ReasonStoreFailure
)

// String returns a stable name for logging and metrics labels.
func (r Reason) String() string {
	switch r {
	case ReasonSuccess:
		return "success"
	case ReasonSameAccount:
		return "same_account"
	case ReasonInvalidAmount:
		return "invalid_amount"
	case ReasonLimitExceeded:
		return "limit_exceeded"
	case ReasonInsufficientFunds:
		return "insufficient_funds"
	case ReasonAccountNotFound:
		return "account_not_found"
	case ReasonTransactionError:
		return "transaction_error"
	case ReasonStoreFailure:
		return "store_failure"
	}
	return "unknown"
}

// Err maps a rejection reason to its sentinel error. Success has no error.
func (r Reason) Err() error {
	switch r {
	case ReasonSameAccount:
		return ErrSameAccount
	case ReasonInvalidAmount:
		return ErrInvalidAmount
	case ReasonLimitExceeded:
		return ErrLimitExceeded
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	case ReasonAccountNotFound:
		return ErrAccountNotFound
	}
	return nil
}

// TransferOutcome is the single structured result of a transfer
// operation. TransactionID is set only when the transfer was applied.
type TransferOutcome struct {
	Reason        Reason
	Message       string
	TransactionID string
}

// Applied reports whether both legs committed.
func (o *TransferOutcome) Applied() bool {
	return o.Reason == ReasonSuccess
}

// Rejected builds a rejection outcome for the given reason.
func Rejected(reason Reason) *TransferOutcome {
	msg := "transfer rejected"
	if err := reason.Err(); err != nil {
		msg = err.Error()
	}
	return &TransferOutcome{Reason: reason, Message: msg}
}

// Applied builds a success outcome carrying the new record's ID.
func Applied(transactionID string) *TransferOutcome {
	return &TransferOutcome{
		Reason:        ReasonSuccess,
		Message:       "transfer completed",
		TransactionID: transactionID,
	}
}
