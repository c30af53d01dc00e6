package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/usecase"
)

func TestRetrierRetriesOnRetryableError(t *testing.T) {
	r := NewRetrier(zerolog.Nop())
	r.maxRetries = 2
	r.initialInterval = 1 * time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = 10 * time.Millisecond

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRetrierStopsOnPermanentError(t *testing.T) {
	r := NewRetrier(zerolog.Nop())
	attempts := 0
	permanentErr := errors.New("permanent")

	err := r.Retry(context.Background(), func() error {
		attempts++
		return permanentErr
	})

	if !errors.Is(err, permanentErr) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsRetryableError(t *testing.T) {
	retryableErr := &pgconn.PgError{Code: pgErrDeadlock}
	if !isRetryableError(retryableErr) {
		t.Fatalf("expected deadlock error to be retryable")
	}

	nonRetryable := errors.New("other")
	if isRetryableError(nonRetryable) {
		t.Fatalf("expected generic error to be non-retryable")
	}
}

func TestWrapStoreError(t *testing.T) {
	constraint := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	wrapped := wrapStoreError(constraint)
	if !errors.Is(wrapped, usecase.ErrStoreRejected) {
		t.Fatalf("expected constraint violation to map to store rejection, got %v", wrapped)
	}

	other := &pgconn.PgError{Code: "42P01", Message: "relation missing"}
	if errors.Is(wrapStoreError(other), usecase.ErrStoreRejected) {
		t.Fatalf("non-constraint error must not map to store rejection")
	}

	if wrapStoreError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestNumericDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "100.5", "-300", "100000000", "0.01"} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad test value %q: %v", s, err)
		}
		if got := numericToDecimal(decimalToNumeric(d)); !got.Equal(d) {
			t.Errorf("round trip %q = %q", s, got.String())
		}
	}
}
