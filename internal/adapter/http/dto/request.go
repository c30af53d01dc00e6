package dto

import (
	"encoding/json"
	"fmt"
)

// Amount carries the raw amount field so validation can report a
// non-numeric value as a field error instead of a decode failure.
// Both JSON strings and JSON numbers are accepted.
type Amount string

// UnmarshalJSON accepts either representation. A JSON null reads as
// absent so validation reports a missing field.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n.String())
		return nil
	}

	return fmt.Errorf("amount must be a string or number")
}

// TransferRequest represents a request to transfer funds.
type TransferRequest struct {
	SourceAccount      string `json:"source_account"`
	DestinationAccount string `json:"destination_account"`
	Amount             Amount `json:"amount"`
	Description        string `json:"description"`
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	Class string `json:"class"`
}

// RegisterRequest represents a request to register a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
