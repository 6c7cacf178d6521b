// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"
)

// GetSessionInput represents the input for reading a session.
type GetSessionInput struct {
	SessionID uuid.UUID
}

// GetSessionOutput represents the current session snapshot. Clients poll this
// while the session sits in ai_thinking.
type GetSessionOutput struct {
	Session Session
}

// GetSessionUseCase reads the current workflow state.
type GetSessionUseCase struct {
	manager *SessionManager
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(manager *SessionManager) *GetSessionUseCase {
	return &GetSessionUseCase{manager: manager}
}

// Execute returns a copy of the session.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	session, err := uc.manager.View(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}
