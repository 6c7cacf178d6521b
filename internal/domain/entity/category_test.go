package entity

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		if !category.Valid() {
			t.Errorf("expected %s valid", category)
		}
	}
	if Category("Crypto").Valid() {
		t.Error("expected unknown category invalid")
	}
}

func TestCategoryValidForExpense(t *testing.T) {
	if CategoryIncome.ValidForExpense() {
		t.Error("expected Income rejected for expenses")
	}
	for _, category := range ExpenseCategories() {
		if !category.ValidForExpense() {
			t.Errorf("expected %s valid for expenses", category)
		}
	}
}

func TestCategoryDisplay(t *testing.T) {
	tests := []struct {
		category Category
		label    string
		color    string
	}{
		{CategoryFood, "Food", "#FF9F43"},
		{CategoryTransport, "Travel", "#54A0FF"},
		{CategoryIncome, "Allowance & Funds", "#2ECC71"},
		{CategoryMiscellaneous, "Misc", "#8395A7"},
	}

	for _, tt := range tests {
		if label := tt.category.DisplayLabel(); label != tt.label {
			t.Errorf("%s: expected label %q, got %q", tt.category, tt.label, label)
		}
		if color := tt.category.DisplayColor(); color != tt.color {
			t.Errorf("%s: expected color %s, got %s", tt.category, tt.color, color)
		}
	}

	// Unknown categories fall back instead of rendering blank chart slices.
	if color := Category("Crypto").DisplayColor(); color != "#8395A7" {
		t.Errorf("expected the fallback color, got %s", color)
	}
}
