package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_ValidateDebit(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		floor       decimal.Decimal
		debitAmount decimal.Decimal
		expectError bool
	}{
		{
			name:        "checking - debit less than balance",
			balance:     decimal.NewFromInt(100),
			floor:       decimal.Zero,
			debitAmount: decimal.NewFromInt(50),
			expectError: false,
		},
		{
			name:        "checking - debit exact balance",
			balance:     decimal.NewFromInt(100),
			floor:       decimal.Zero,
			debitAmount: decimal.NewFromInt(100),
			expectError: false,
		},
		{
			name:        "checking - debit one cent over balance",
			balance:     decimal.NewFromInt(100),
			floor:       decimal.Zero,
			debitAmount: decimal.RequireFromString("100.01"),
			expectError: true,
		},
		{
			name:        "credit - floor permits overdraft",
			balance:     decimal.NewFromInt(100),
			floor:       decimal.NewFromInt(-500),
			debitAmount: decimal.NewFromInt(400),
			expectError: false,
		},
		{
			name:        "credit - debit past the floor",
			balance:     decimal.NewFromInt(100),
			floor:       decimal.NewFromInt(-500),
			debitAmount: decimal.NewFromInt(601),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{Balance: tt.balance, Floor: tt.floor}

			err := acc.ValidateDebit(tt.debitAmount)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	acc := &Account{Balance: decimal.NewFromInt(100)}

	if got := acc.ApplyDebit(decimal.NewFromInt(30)); !got.Equal(decimal.NewFromInt(70)) {
		t.Errorf("expected 70 after debit, got %s", got)
	}
	if got := acc.ApplyCredit(decimal.NewFromInt(30)); !got.Equal(decimal.NewFromInt(130)) {
		t.Errorf("expected 130 after credit, got %s", got)
	}
}

func TestAccountClass_IsValid(t *testing.T) {
	for _, c := range []AccountClass{ClassChecking, ClassSavings, ClassCredit} {
		if !c.IsValid() {
			t.Errorf("expected class %s to be valid", c)
		}
	}
	if AccountClass("premium").IsValid() {
		t.Error("expected unknown class to be invalid")
	}
}

func TestTransactionRecord_DirectionFor(t *testing.T) {
	rec := &TransactionRecord{SourceAccount: "acc-1", DestinationAccount: "acc-2"}

	if got := rec.DirectionFor("acc-1"); got != DirectionSent {
		t.Errorf("expected sent, got %s", got)
	}
	if got := rec.DirectionFor("acc-2"); got != DirectionReceived {
		t.Errorf("expected received, got %s", got)
	}
}
