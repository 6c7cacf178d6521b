// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// RestartInput represents the input for restarting a session.
type RestartInput struct {
	SessionID uuid.UUID
}

// RestartOutput represents the output of restarting a session.
type RestartOutput struct {
	Session Session
}

// RestartUseCase discards all workflow state and returns the session to the
// amount step. The generation bump guarantees any in-flight advisor result is
// dropped instead of leaking into the fresh instance.
type RestartUseCase struct {
	manager *SessionManager
}

// NewRestartUseCase creates a new RestartUseCase instance.
func NewRestartUseCase(manager *SessionManager) *RestartUseCase {
	return &RestartUseCase{manager: manager}
}

// Execute resets the session to amount entry.
func (uc *RestartUseCase) Execute(ctx context.Context, input RestartInput) (*RestartOutput, error) {
	session, err := uc.manager.mutate(input.SessionID, func(s *Session) error {
		s.State = StateAmountEntry
		s.Amount = decimal.Zero
		s.Type = entity.TransactionType("")
		s.Context = ""
		s.Suggestion = nil
		s.generation++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RestartOutput{Session: session}, nil
}
