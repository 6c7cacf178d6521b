// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneytree/backend/internal/application/adapter"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// SubmitContextInput represents the input for the expense-context step.
// Quick-pick labels arrive here as plain context text; their category hints
// never shortcut the advisor.
type SubmitContextInput struct {
	SessionID uuid.UUID
	Context   string
}

// SubmitContextOutput represents the output of the expense-context step.
type SubmitContextOutput struct {
	Session Session
}

// SubmitContextUseCase accepts the expense description and hands the session
// to the advisor asynchronously.
type SubmitContextUseCase struct {
	manager *SessionManager
	runner  analysisRunner
}

// NewSubmitContextUseCase creates a new SubmitContextUseCase instance.
func NewSubmitContextUseCase(manager *SessionManager, advisor adapter.AIAdvisor, timeout time.Duration) *SubmitContextUseCase {
	return &SubmitContextUseCase{
		manager: manager,
		runner:  newAnalysisRunner(manager, advisor, timeout),
	}
}

// Execute validates the context text, moves the session into ai_thinking, and
// launches the advisor call. The call outcome (or the fixed fallback) lands
// on the confirmation step; the session's generation token drops results from
// instances that have since restarted or been cancelled.
func (uc *SubmitContextUseCase) Execute(ctx context.Context, input SubmitContextInput) (*SubmitContextOutput, error) {
	trimmed := strings.TrimSpace(input.Context)
	if trimmed == "" {
		return nil, domainerror.NewWorkflowError(
			domainerror.ErrCodeEmptyContext,
			"describe the expense before continuing",
			domainerror.ErrEmptyContext,
		)
	}

	session, err := uc.manager.mutate(input.SessionID, func(s *Session) error {
		if err := requireState(s, StateExpenseContext); err != nil {
			return err
		}
		s.Context = trimmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	session, generation, err := uc.manager.beginAnalysis(input.SessionID, nil, StateExpenseContext)
	if err != nil {
		return nil, err
	}

	go uc.runner.runCategorize(session.ID, generation, session.Amount, trimmed)

	return &SubmitContextOutput{Session: session}, nil
}
