package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vbalan/bankcore/internal/adapter/http/dto"
	"github.com/vbalan/bankcore/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.Error(message))
}

// statusForReason maps a transfer outcome reason to a transport status.
// The mapping is total: business rejections render as 400, store
// failure as 500, and any reason this table does not know falls back
// to 500 so a response is always produced.
func statusForReason(reason domain.Reason) int {
	switch reason {
	case domain.ReasonSuccess:
		return http.StatusOK
	case domain.ReasonSameAccount,
		domain.ReasonInvalidAmount,
		domain.ReasonLimitExceeded,
		domain.ReasonInsufficientFunds,
		domain.ReasonAccountNotFound,
		domain.ReasonTransactionError:
		return http.StatusBadRequest
	case domain.ReasonStoreFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// mapDomainError maps domain errors to HTTP status codes for the
// account, history, and auth endpoints.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidClass),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
