package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 250
	MinPasswordLength    = 8
	MaxPasswordLength    = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError names a single malformed or missing request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field failure in a request so the
// caller learns about all of them at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// NewTransferRequest normalizes raw request fields into a
// TransferRequest. It checks presence of both account numbers and that
// the amount parses as a number; sign and limit checks belong to the
// transfer operation itself. The description is trimmed and truncated,
// never rejected. No shared state is touched here.
func NewTransferRequest(source, destination, amount, description string) (*TransferRequest, *ValidationError) {
	verr := &ValidationError{}

	source = strings.TrimSpace(source)
	if source == "" {
		verr.add("source_account", "is required")
	}

	destination = strings.TrimSpace(destination)
	if destination == "" {
		verr.add("destination_account", "is required")
	}

	var parsed decimal.Decimal
	if strings.TrimSpace(amount) == "" {
		verr.add("amount", "is required")
	} else {
		var err error
		parsed, err = decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			verr.add("amount", "must be a number")
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &TransferRequest{
		SourceAccount:      source,
		DestinationAccount: destination,
		Amount:             parsed,
		Description:        TruncateDescription(description),
	}, nil
}

// TruncateDescription trims surrounding whitespace and silently caps
// the description at MaxDescriptionLength characters. The cap counts
// runes, not bytes, so a multi-byte description is never split mid
// character.
func TruncateDescription(description string) string {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) <= MaxDescriptionLength {
		return description
	}
	runes := []rune(description)
	return string(runes[:MaxDescriptionLength])
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(strings.ToLower(email))) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword validates password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrWeakPassword, MaxPasswordLength)
	}
	return nil
}
