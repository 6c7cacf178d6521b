package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

func historyStore(t *testing.T) *Store {
	t.Helper()
	persisted := entity.UserState{
		Balance:          decimal.NewFromInt(1000),
		MonthlyAllowance: decimal.NewFromInt(5000),
		Transactions: []entity.Transaction{
			{Amount: decimal.NewFromInt(120), Type: entity.TransactionTypeExpense, Category: entity.CategoryFood, SubCategory: "Starbucks Coffee"},
			{Amount: decimal.NewFromInt(80), Type: entity.TransactionTypeExpense, Category: entity.CategoryTransport, SubCategory: "Metro Recharge"},
			{Amount: decimal.NewFromInt(5000), Type: entity.TransactionTypeIncome, Category: entity.CategoryIncome, SubCategory: "Allowance"},
		},
	}
	return newLoadedStore(t, &fakeRepository{state: &persisted})
}

func TestListHistoryUseCase_Execute(t *testing.T) {
	uc := NewListHistoryUseCase(historyStore(t))

	tests := []struct {
		name      string
		input     ListHistoryInput
		wantCount int
	}{
		{"no filter returns everything", ListHistoryInput{}, 3},
		{"expense filter", ListHistoryInput{Filter: HistoryFilterExpense}, 2},
		{"income filter", ListHistoryInput{Filter: HistoryFilterIncome}, 1},
		{"search matches sub-category case-insensitively", ListHistoryInput{Search: "sTaRbUcKs"}, 1},
		{"search matches category", ListHistoryInput{Search: "transport"}, 1},
		{"search combined with filter", ListHistoryInput{Filter: HistoryFilterExpense, Search: "allowance"}, 0},
		{"search with no match", ListHistoryInput{Search: "pizza"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output.Transactions) != tt.wantCount {
				t.Errorf("expected %d transactions, got %d", tt.wantCount, len(output.Transactions))
			}
			// Total always reports the unfiltered ledger size.
			if output.Total != 3 {
				t.Errorf("expected total 3, got %d", output.Total)
			}
		})
	}
}

func TestListHistoryUseCase_PreservesOrder(t *testing.T) {
	uc := NewListHistoryUseCase(historyStore(t))

	output, err := uc.Execute(context.Background(), ListHistoryInput{Filter: HistoryFilterExpense})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Transactions[0].SubCategory != "Starbucks Coffee" {
		t.Errorf("expected ledger order preserved, got %q first", output.Transactions[0].SubCategory)
	}
}
