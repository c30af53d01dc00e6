package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
	"github.com/vbalan/bankcore/internal/usecase/mocks"
)

func TestHistoryUseCase_ListByAccount_DirectionTags(t *testing.T) {
	recordRepo := mocks.NewMockTransactionRepository()
	recordRepo.Create(context.Background(), nil, &domain.TransactionRecord{
		ID:                 "txn-1",
		SourceAccount:      "acc-1",
		DestinationAccount: "acc-2",
		Amount:             decimal.NewFromInt(10),
	})
	recordRepo.Create(context.Background(), nil, &domain.TransactionRecord{
		ID:                 "txn-2",
		SourceAccount:      "acc-3",
		DestinationAccount: "acc-1",
		Amount:             decimal.NewFromInt(20),
	})

	uc := usecase.NewHistoryUseCase(recordRepo)

	activity, err := uc.ListByAccount(context.Background(), "acc-1", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activity) != 2 {
		t.Fatalf("expected 2 records, got %d", len(activity))
	}

	directions := map[string]domain.Direction{}
	for _, a := range activity {
		directions[a.Record.ID] = a.Direction
	}
	if directions["txn-1"] != domain.DirectionSent {
		t.Errorf("expected txn-1 tagged sent, got %s", directions["txn-1"])
	}
	if directions["txn-2"] != domain.DirectionReceived {
		t.Errorf("expected txn-2 tagged received, got %s", directions["txn-2"])
	}
}

func TestHistoryUseCase_GetRecord_NotFound(t *testing.T) {
	uc := usecase.NewHistoryUseCase(mocks.NewMockTransactionRepository())

	if _, err := uc.GetRecord(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing record")
	}
}
