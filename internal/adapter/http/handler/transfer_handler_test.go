package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/adapter/http/handler"
	"github.com/vbalan/bankcore/internal/adapter/http/middleware"
	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
	"github.com/vbalan/bankcore/internal/usecase/mocks"
)

type transferFixture struct {
	handler     *handler.TransferHandler
	accountRepo *mocks.MockAccountRepository
	recordRepo  *mocks.MockTransactionRepository
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()

	accountRepo := mocks.NewMockAccountRepository()
	recordRepo := mocks.NewMockTransactionRepository()

	uc := usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		accountRepo,
		recordRepo,
		mocks.NewMockIDGenerator(),
		mocks.PassthroughRetrier{},
		nil,
		decimal.RequireFromString(usecase.DefaultTransferCeiling),
		zerolog.Nop(),
	)

	return &transferFixture{
		handler:     handler.NewTransferHandler(uc),
		accountRepo: accountRepo,
		recordRepo:  recordRepo,
	}
}

func (f *transferFixture) seed(number, balance string) {
	f.accountRepo.Seed(&domain.Account{
		Number:  number,
		OwnerID: "owner-1",
		Class:   domain.ClassChecking,
		Balance: decimal.RequireFromString(balance),
		Floor:   decimal.Zero,
	})
}

func (f *transferFixture) post(t *testing.T, body string, principal string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewBufferString(body))
	if principal != "" {
		req = req.WithContext(middleware.WithPrincipal(context.Background(), principal))
	}
	rr := httptest.NewRecorder()
	f.handler.Create(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return envelope
}

func TestTransferCreate_Success(t *testing.T) {
	f := newTransferFixture(t)
	f.seed("ACC1", "500")
	f.seed("ACC2", "0")

	rr := f.post(t, `{"source_account":"ACC1","destination_account":"ACC2","amount":"100","description":"rent"}`, "user-1")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "ok" {
		t.Fatalf("expected ok status, got %v", envelope)
	}

	data := envelope["data"].(map[string]any)
	if data["transaction_id"] == "" || data["source_account"] != "ACC1" || data["destination_account"] != "ACC2" {
		t.Fatalf("unexpected data payload: %v", data)
	}

	if got := f.accountRepo.Balance("ACC1"); !got.Equal(decimal.RequireFromString("400")) {
		t.Errorf("source balance = %s, want 400", got)
	}
	if got := f.accountRepo.Balance("ACC2"); !got.Equal(decimal.RequireFromString("100")) {
		t.Errorf("destination balance = %s, want 100", got)
	}
}

func TestTransferCreate_ValidationCollectsAllFields(t *testing.T) {
	f := newTransferFixture(t)

	rr := f.post(t, `{"amount":"abc"}`, "user-1")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", envelope)
	}

	message := envelope["message"].(string)
	for _, field := range []string{"source_account", "destination_account", "amount"} {
		if !strings.Contains(message, field) {
			t.Errorf("message %q does not mention %q", message, field)
		}
	}
}

func TestTransferCreate_RejectionStatuses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"same account", `{"source_account":"ACC1","destination_account":"ACC1","amount":"1"}`},
		{"zero amount", `{"source_account":"ACC1","destination_account":"ACC2","amount":"0"}`},
		{"negative amount", `{"source_account":"ACC1","destination_account":"ACC2","amount":"-5"}`},
		{"over ceiling", `{"source_account":"ACC1","destination_account":"ACC2","amount":"100000000.01"}`},
		{"insufficient funds", `{"source_account":"ACC1","destination_account":"ACC2","amount":"500.01"}`},
		{"unknown account", `{"source_account":"ACC1","destination_account":"GHOST","amount":"10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferFixture(t)
			f.seed("ACC1", "500")
			f.seed("ACC2", "0")

			rr := f.post(t, tt.body, "user-1")

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			if envelope := decodeEnvelope(t, rr); envelope["status"] != "error" {
				t.Fatalf("expected error envelope, got %v", envelope)
			}
			if f.recordRepo.Count() != 0 {
				t.Errorf("rejection must not write records")
			}
		})
	}
}

func TestTransferCreate_StoreFailureIsUncertain(t *testing.T) {
	f := newTransferFixture(t)
	f.seed("ACC1", "500")
	f.seed("ACC2", "0")
	f.recordRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
		return errors.New("connection reset")
	}

	rr := f.post(t, `{"source_account":"ACC1","destination_account":"ACC2","amount":"10"}`, "user-1")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	if message := envelope["message"].(string); !strings.Contains(message, "uncertain") {
		t.Errorf("store failure must report an uncertain outcome, got %q", message)
	}
}

func TestTransferCreate_NoPrincipal(t *testing.T) {
	f := newTransferFixture(t)

	rr := f.post(t, `{"source_account":"ACC1","destination_account":"ACC2","amount":"10"}`, "")

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestTransferCreate_MalformedBody(t *testing.T) {
	f := newTransferFixture(t)

	rr := f.post(t, `{not json`, "user-1")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestTransferCreate_NumberAmountAccepted(t *testing.T) {
	f := newTransferFixture(t)
	f.seed("ACC1", "500")
	f.seed("ACC2", "0")

	rr := f.post(t, `{"source_account":"ACC1","destination_account":"ACC2","amount":25.50}`, "user-1")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := f.accountRepo.Balance("ACC2"); !got.Equal(decimal.RequireFromString("25.50")) {
		t.Errorf("destination balance = %s, want 25.50", got)
	}
}
