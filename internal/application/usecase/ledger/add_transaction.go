// Package ledger contains the ledger store and its use cases.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// AddTransactionInput represents the input for committing a transaction.
type AddTransactionInput struct {
	Amount       decimal.Decimal
	Type         entity.TransactionType
	Category     entity.Category
	SubCategory  string
	Note         string
	IsForFriends bool
}

// AddTransactionOutput represents the output of committing a transaction.
type AddTransactionOutput struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

// AddTransactionUseCase handles transaction commit logic.
type AddTransactionUseCase struct {
	store *Store
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(store *Store) *AddTransactionUseCase {
	return &AddTransactionUseCase{store: store}
}

// Execute commits the transaction to the ledger.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	transaction, state, err := uc.store.AddTransaction(ctx, entity.TransactionDraft{
		Amount:       input.Amount,
		Type:         input.Type,
		Category:     input.Category,
		SubCategory:  input.SubCategory,
		Note:         input.Note,
		IsForFriends: input.IsForFriends,
	})
	if err != nil {
		return nil, err
	}

	return &AddTransactionOutput{
		Transaction: transaction,
		Balance:     state.Balance,
	}, nil
}
