// Package ledger contains the ledger store and its use cases.
package ledger

import (
	"context"
	"strings"

	"github.com/moneytree/backend/internal/domain/entity"
)

// HistoryFilter narrows the history view by transaction type.
type HistoryFilter string

const (
	HistoryFilterAll     HistoryFilter = "all"
	HistoryFilterIncome  HistoryFilter = "income"
	HistoryFilterExpense HistoryFilter = "expense"
)

// ListHistoryInput represents the input for the history view.
type ListHistoryInput struct {
	Filter HistoryFilter
	Search string
}

// ListHistoryOutput represents the output of the history view.
type ListHistoryOutput struct {
	Transactions []entity.Transaction
	Total        int
}

// ListHistoryUseCase handles the filtered, searchable transaction log.
type ListHistoryUseCase struct {
	store *Store
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(store *Store) *ListHistoryUseCase {
	return &ListHistoryUseCase{store: store}
}

// Execute returns the transactions matching the filter and search text.
// Search matches case-insensitively against category and subCategory.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	state := uc.store.Snapshot()

	filter := input.Filter
	if filter == "" {
		filter = HistoryFilterAll
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))

	matched := make([]entity.Transaction, 0, len(state.Transactions))
	for _, t := range state.Transactions {
		if filter != HistoryFilterAll && string(t.Type) != string(filter) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(string(t.Category)), search) &&
			!strings.Contains(strings.ToLower(t.SubCategory), search) {
			continue
		}
		matched = append(matched, t)
	}

	return &ListHistoryOutput{
		Transactions: matched,
		Total:        len(state.Transactions),
	}, nil
}
