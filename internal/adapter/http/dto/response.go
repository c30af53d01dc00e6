package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
)

// Response statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) Response {
	return Response{Status: StatusOK, Message: message, Data: data}
}

// Error builds an error envelope.
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// TransferData is the payload of a successful transfer response.
type TransferData struct {
	TransactionID      string          `json:"transaction_id"`
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
}

// TransferDataFrom builds the payload from an applied outcome and its
// originating request.
func TransferDataFrom(outcome *domain.TransferOutcome, req *domain.TransferRequest) TransferData {
	return TransferData{
		TransactionID:      outcome.TransactionID,
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number    string          `json:"number"`
	Class     string          `json:"class"`
	Balance   decimal.Decimal `json:"balance"`
	Floor     decimal.Decimal `json:"floor"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Number:    a.Number,
		Class:     string(a.Class),
		Balance:   a.Balance,
		Floor:     a.Floor,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// RecordResponse represents a transaction record in API responses.
type RecordResponse struct {
	TransactionID      string          `json:"transaction_id"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(r *domain.TransactionRecord) *RecordResponse {
	return &RecordResponse{
		TransactionID:      r.ID,
		Type:               r.Type,
		Amount:             r.Amount,
		SourceAccount:      r.SourceAccount,
		DestinationAccount: r.DestinationAccount,
		Description:        r.Description,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
	}
}

// ActivityResponse represents a direction-tagged transaction record.
type ActivityResponse struct {
	TransactionID      string          `json:"transaction_id"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	Direction          string          `json:"direction"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ActivityFromDomain converts tagged activity to a response.
func ActivityFromDomain(a usecase.AccountActivity) *ActivityResponse {
	return &ActivityResponse{
		TransactionID:      a.Record.ID,
		Type:               a.Record.Type,
		Amount:             a.Record.Amount,
		SourceAccount:      a.Record.SourceAccount,
		DestinationAccount: a.Record.DestinationAccount,
		Description:        a.Record.Description,
		Status:             a.Record.Status,
		Direction:          string(a.Direction),
		CreatedAt:          a.Record.CreatedAt,
	}
}

// ActivitiesFromDomain converts tagged activity lists to responses.
func ActivitiesFromDomain(activity []usecase.AccountActivity) []*ActivityResponse {
	result := make([]*ActivityResponse, len(activity))
	for i, a := range activity {
		result[i] = ActivityFromDomain(a)
	}
	return result
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// TokenData is the payload of a successful login.
type TokenData struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
