// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// SubmitAmountInput represents the input for the amount step.
type SubmitAmountInput struct {
	SessionID uuid.UUID
	Amount    decimal.Decimal
}

// SubmitAmountOutput represents the output of the amount step.
type SubmitAmountOutput struct {
	Session Session
}

// SubmitAmountUseCase handles the amount-entry step. An invalid amount is
// rejected with no transition: the session stays on amount entry.
type SubmitAmountUseCase struct {
	manager *SessionManager
}

// NewSubmitAmountUseCase creates a new SubmitAmountUseCase instance.
func NewSubmitAmountUseCase(manager *SessionManager) *SubmitAmountUseCase {
	return &SubmitAmountUseCase{manager: manager}
}

// Execute records the amount and advances to type selection.
func (uc *SubmitAmountUseCase) Execute(ctx context.Context, input SubmitAmountInput) (*SubmitAmountOutput, error) {
	session, err := uc.manager.mutate(input.SessionID, func(s *Session) error {
		if err := requireState(s, StateAmountEntry); err != nil {
			return err
		}
		if !input.Amount.IsPositive() {
			return domainerror.NewWorkflowError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be a positive number",
				domainerror.ErrInvalidAmount,
			)
		}
		s.Amount = input.Amount
		s.State = StateTypeSelection
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitAmountOutput{Session: session}, nil
}
