package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSignedAmount(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromInt(120), Type: TransactionTypeExpense}
	if !expense.SignedAmount().Equal(decimal.NewFromInt(-120)) {
		t.Errorf("expected expense to subtract, got %s", expense.SignedAmount())
	}

	income := Transaction{Amount: decimal.NewFromInt(5000), Type: TransactionTypeIncome}
	if !income.SignedAmount().Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected income to add, got %s", income.SignedAmount())
	}
}

func TestNewTransaction(t *testing.T) {
	draft := TransactionDraft{
		Amount:      decimal.NewFromInt(40),
		Type:        TransactionTypeExpense,
		Category:    CategoryFood,
		SubCategory: "Chai",
	}
	timestamp := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	first := NewTransaction(draft, timestamp)
	second := NewTransaction(draft, timestamp)

	if first.ID == second.ID {
		t.Error("expected each commit to get its own ID")
	}
	if !first.Timestamp.Equal(timestamp) {
		t.Errorf("expected the given commit timestamp, got %s", first.Timestamp)
	}
	if first.Category != CategoryFood || first.SubCategory != "Chai" {
		t.Errorf("expected draft fields carried over, got %+v", first)
	}
}
