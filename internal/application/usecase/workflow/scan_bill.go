// Package workflow contains the categorization workflow use cases.
package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneytree/backend/internal/application/adapter"
	"github.com/moneytree/backend/internal/domain/entity"
	domainerror "github.com/moneytree/backend/internal/domain/error"
)

// ScanBillInput represents the input for the bill-scan entry point.
type ScanBillInput struct {
	SessionID  uuid.UUID
	ImageBytes []byte
}

// ScanBillOutput represents the output of the bill-scan entry point.
type ScanBillOutput struct {
	Session Session
}

// ScanBillUseCase jumps directly from amount entry to ai_thinking with a
// photographed bill. The extracted amount overwrites any manually typed one;
// a failed extraction reopens the amount step.
type ScanBillUseCase struct {
	manager *SessionManager
	runner  analysisRunner
}

// NewScanBillUseCase creates a new ScanBillUseCase instance.
func NewScanBillUseCase(manager *SessionManager, advisor adapter.AIAdvisor, timeout time.Duration) *ScanBillUseCase {
	return &ScanBillUseCase{
		manager: manager,
		runner:  newAnalysisRunner(manager, advisor, timeout),
	}
}

// Execute launches bill extraction for the session.
func (uc *ScanBillUseCase) Execute(ctx context.Context, input ScanBillInput) (*ScanBillOutput, error) {
	if len(input.ImageBytes) == 0 {
		return nil, domainerror.NewWorkflowError(
			domainerror.ErrCodeEmptyBillImage,
			"bill image cannot be empty",
			domainerror.ErrEmptyBillImage,
		)
	}

	// A scanned bill is always an expense; the type rides along on the same
	// transition into ai_thinking.
	session, generation, err := uc.manager.beginAnalysis(input.SessionID, func(s *Session) {
		s.Type = entity.TransactionTypeExpense
	}, StateAmountEntry)
	if err != nil {
		return nil, err
	}

	go uc.runner.runExtractBill(session.ID, generation, input.ImageBytes)

	return &ScanBillOutput{Session: session}, nil
}
