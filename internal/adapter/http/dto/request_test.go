package dto

import (
	"encoding/json"
	"testing"
)

func TestAmountAcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string amount", `{"amount":"100.50"}`, "100.50"},
		{"number amount", `{"amount":100.50}`, "100.50"},
		{"integer amount", `{"amount":42}`, "42"},
		{"garbage amount", `{"amount":"not-a-number"}`, "not-a-number"},
		{"missing amount", `{}`, ""},
		{"null amount", `{"amount":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransferRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if string(req.Amount) != tt.want {
				t.Errorf("amount = %q, want %q", req.Amount, tt.want)
			}
		})
	}
}

func TestAmountRejectsStructuredValues(t *testing.T) {
	var req TransferRequest
	if err := json.Unmarshal([]byte(`{"amount":{"v":1}}`), &req); err == nil {
		t.Fatalf("expected error for object amount")
	}
}

func TestTransferRequestDecodesAllFields(t *testing.T) {
	body := `{"source_account":"A","destination_account":"B","amount":"10","description":"rent"}`

	var req TransferRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.SourceAccount != "A" || req.DestinationAccount != "B" ||
		string(req.Amount) != "10" || req.Description != "rent" {
		t.Errorf("unexpected decode result: %+v", req)
	}
}
