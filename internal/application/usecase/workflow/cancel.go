// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"

	"github.com/google/uuid"
)

// CancelInput represents the input for cancelling a session.
type CancelInput struct {
	SessionID uuid.UUID
}

// CancelUseCase abandons the workflow instance with no side effects: nothing
// is committed and any in-flight advisor result is dropped when it arrives.
type CancelUseCase struct {
	manager *SessionManager
}

// NewCancelUseCase creates a new CancelUseCase instance.
func NewCancelUseCase(manager *SessionManager) *CancelUseCase {
	return &CancelUseCase{manager: manager}
}

// Execute removes the session. Cancelling an unknown session is a no-op.
func (uc *CancelUseCase) Execute(ctx context.Context, input CancelInput) error {
	uc.manager.Remove(input.SessionID)
	return nil
}
