// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// IncomeSource identifies where income came from.
type IncomeSource string

const (
	IncomeSourceParents IncomeSource = "parents"
	IncomeSourceFriends IncomeSource = "friends"
	IncomeSourceOther   IncomeSource = "other"
)

// incomeDetails maps each source to its fixed subCategory/note pair.
var incomeDetails = map[IncomeSource]struct {
	subCategory string
	note        string
}{
	IncomeSourceParents: {subCategory: "Allowance", note: "From Parents"},
	IncomeSourceFriends: {subCategory: "Settled by Friend", note: "Money returned"},
	IncomeSourceOther:   {subCategory: "Extra Cash", note: ""},
}

// SelectIncomeSourceInput represents the input for the income-source step.
type SelectIncomeSourceInput struct {
	SessionID uuid.UUID
	Source    IncomeSource
}

// SelectIncomeSourceOutput represents the output of the income-source step.
type SelectIncomeSourceOutput struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

// SelectIncomeSourceUseCase finalizes an income entry. This path maps the
// source deterministically and commits immediately, terminating the workflow:
// the advisor is never consulted for income.
type SelectIncomeSourceUseCase struct {
	manager        *SessionManager
	addTransaction *ledger.AddTransactionUseCase
}

// NewSelectIncomeSourceUseCase creates a new SelectIncomeSourceUseCase instance.
func NewSelectIncomeSourceUseCase(manager *SessionManager, addTransaction *ledger.AddTransactionUseCase) *SelectIncomeSourceUseCase {
	return &SelectIncomeSourceUseCase{
		manager:        manager,
		addTransaction: addTransaction,
	}
}

// Execute commits the income transaction and closes the session.
func (uc *SelectIncomeSourceUseCase) Execute(ctx context.Context, input SelectIncomeSourceInput) (*SelectIncomeSourceOutput, error) {
	details, ok := incomeDetails[input.Source]
	if !ok {
		return nil, domainerror.NewWorkflowError(
			domainerror.ErrCodeInvalidIncomeSource,
			"income source must be parents, friends, or other",
			domainerror.ErrInvalidIncomeSource,
		)
	}

	session, err := uc.manager.claimCommit(input.SessionID, StateIncomeSource)
	if err != nil {
		return nil, err
	}

	output, err := uc.addTransaction.Execute(ctx, ledger.AddTransactionInput{
		Amount:      session.Amount,
		Type:        entity.TransactionTypeIncome,
		Category:    entity.CategoryIncome,
		SubCategory: details.subCategory,
		Note:        details.note,
	})
	if err != nil {
		// A failed persist keeps the session alive so the commit can be retried.
		uc.manager.releaseCommit(input.SessionID)
		return nil, err
	}

	uc.manager.Remove(input.SessionID)

	return &SelectIncomeSourceOutput{
		Transaction: output.Transaction,
		Balance:     output.Balance,
	}, nil
}
