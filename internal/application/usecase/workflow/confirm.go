// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/domain/entity"
)

// ConfirmInput represents the input for the confirmation step.
type ConfirmInput struct {
	SessionID uuid.UUID
	// SubCategory optionally overrides the suggested description.
	SubCategory  string
	IsForFriends bool
}

// ConfirmOutput represents the output of the confirmation step.
type ConfirmOutput struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

// ConfirmUseCase commits the expense built from the session's amount, the
// suggested (or fallback) category, the possibly edited description, and the
// social flag, then terminates the workflow.
type ConfirmUseCase struct {
	manager        *SessionManager
	addTransaction *ledger.AddTransactionUseCase
}

// NewConfirmUseCase creates a new ConfirmUseCase instance.
func NewConfirmUseCase(manager *SessionManager, addTransaction *ledger.AddTransactionUseCase) *ConfirmUseCase {
	return &ConfirmUseCase{
		manager:        manager,
		addTransaction: addTransaction,
	}
}

// Execute commits the confirmed expense and closes the session.
func (uc *ConfirmUseCase) Execute(ctx context.Context, input ConfirmInput) (*ConfirmOutput, error) {
	// Claiming the commit under the manager lock keeps a concurrent duplicate
	// confirm from committing the same session twice.
	session, err := uc.manager.claimCommit(input.SessionID, StateConfirmation)
	if err != nil {
		return nil, err
	}

	subCategory := strings.TrimSpace(input.SubCategory)
	if subCategory == "" {
		subCategory = session.Suggestion.SubCategory
	}

	note := ""
	if input.IsForFriends {
		note = "Friend social spend"
	}

	output, err := uc.addTransaction.Execute(ctx, ledger.AddTransactionInput{
		Amount:       session.Amount,
		Type:         entity.TransactionTypeExpense,
		Category:     session.Suggestion.Category,
		SubCategory:  subCategory,
		Note:         note,
		IsForFriends: input.IsForFriends,
	})
	if err != nil {
		// A failed persist keeps the session on confirmation for a retry.
		uc.manager.releaseCommit(input.SessionID)
		return nil, err
	}

	uc.manager.Remove(input.SessionID)

	return &ConfirmOutput{
		Transaction: output.Transaction,
		Balance:     output.Balance,
	}, nil
}
