// Package workflow contains the categorization workflow use cases.
package workflow

import "context"

// StartSessionOutput represents the output of starting a workflow session.
type StartSessionOutput struct {
	Session Session
}

// StartSessionUseCase opens a fresh workflow instance at the amount step.
type StartSessionUseCase struct {
	manager *SessionManager
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance.
func NewStartSessionUseCase(manager *SessionManager) *StartSessionUseCase {
	return &StartSessionUseCase{manager: manager}
}

// Execute opens a new session.
func (uc *StartSessionUseCase) Execute(ctx context.Context) (*StartSessionOutput, error) {
	return &StartSessionOutput{Session: uc.manager.Create()}, nil
}
