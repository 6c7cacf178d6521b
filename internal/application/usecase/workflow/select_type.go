// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// SelectTypeInput represents the input for the type-selection step.
type SelectTypeInput struct {
	SessionID uuid.UUID
	Type      entity.TransactionType
}

// SelectTypeOutput represents the output of the type-selection step.
type SelectTypeOutput struct {
	Session Session
}

// SelectTypeUseCase routes the session: expense to the context step, income
// to the income-source step.
type SelectTypeUseCase struct {
	manager *SessionManager
}

// NewSelectTypeUseCase creates a new SelectTypeUseCase instance.
func NewSelectTypeUseCase(manager *SessionManager) *SelectTypeUseCase {
	return &SelectTypeUseCase{manager: manager}
}

// Execute records the transaction type and advances the session.
func (uc *SelectTypeUseCase) Execute(ctx context.Context, input SelectTypeInput) (*SelectTypeOutput, error) {
	session, err := uc.manager.mutate(input.SessionID, func(s *Session) error {
		if err := requireState(s, StateTypeSelection); err != nil {
			return err
		}
		if !input.Type.Valid() {
			return domainerror.NewWorkflowError(
				domainerror.ErrCodeInvalidWorkflowState,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		s.Type = input.Type
		if input.Type == entity.TransactionTypeIncome {
			s.State = StateIncomeSource
		} else {
			s.State = StateExpenseContext
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SelectTypeOutput{Session: session}, nil
}
