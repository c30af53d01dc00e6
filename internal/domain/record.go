package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tags a transaction record relative to a viewing account.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// RecordStatus is always completed: the engine has no partial or
// pending transaction state.
const RecordStatusCompleted = "completed"

// TransactionRecord is the immutable fact written when a transfer
// commits. Exactly one record exists per applied transfer; rejected
// transfers write none.
type TransactionRecord struct {
	ID                 string
	Type               string
	Amount             decimal.Decimal
	SourceAccount      string
	DestinationAccount string
	Description        string
	Status             string
	CreatedAt          time.Time
}

// RecordTypeTransfer is the only record type the engine produces.
const RecordTypeTransfer = "transfer"

// DirectionFor returns the record's direction relative to the viewing
// account.
func (r *TransactionRecord) DirectionFor(accountNumber string) Direction {
	if r.SourceAccount == accountNumber {
		return DirectionSent
	}
	return DirectionReceived
}
