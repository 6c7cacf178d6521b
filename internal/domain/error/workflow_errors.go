// Package error defines domain-specific errors for the MoneyTree backend.
package error

import "errors"

// Workflow domain errors.
var (
	// ErrSessionNotFound is returned when the workflow session does not exist
	// or has already been committed or cancelled.
	ErrSessionNotFound = errors.New("workflow session not found")

	// ErrInvalidWorkflowState is returned when an action is not valid in the
	// session's current state.
	ErrInvalidWorkflowState = errors.New("action not valid in current workflow state")

	// ErrEmptyContext is returned when the expense context text is empty after trimming.
	ErrEmptyContext = errors.New("context text cannot be empty")

	// ErrInvalidIncomeSource is returned when the income source is not one of
	// parents, friends, or other.
	ErrInvalidIncomeSource = errors.New("invalid income source")

	// ErrEmptyBillImage is returned when the scanned bill payload is empty.
	ErrEmptyBillImage = errors.New("bill image cannot be empty")

	// ErrInvalidAmount is returned when the workflow amount is missing,
	// non-numeric, or not positive. No transition occurs.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAnalysisInFlight is returned when a second AI request is attempted
	// while one is already pending for the session.
	ErrAnalysisInFlight = errors.New("categorization already in progress")
)

// WorkflowErrorCode defines error codes for workflow errors.
// Format: WFL-XXYYYY where XX is category and YYYY is specific error.
type WorkflowErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSessionNotFound      WorkflowErrorCode = "WFL-010001"
	ErrCodeInvalidWorkflowState WorkflowErrorCode = "WFL-010002"
	ErrCodeEmptyContext         WorkflowErrorCode = "WFL-010003"
	ErrCodeInvalidIncomeSource  WorkflowErrorCode = "WFL-010004"
	ErrCodeEmptyBillImage       WorkflowErrorCode = "WFL-010005"
	ErrCodeInvalidAmount        WorkflowErrorCode = "WFL-010006"

	// Concurrency errors (02XXXX)
	ErrCodeAnalysisInFlight WorkflowErrorCode = "WFL-020001"
)

// WorkflowError represents a workflow error with code and message.
type WorkflowError struct {
	Code    WorkflowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// NewWorkflowError creates a new WorkflowError with the given code and message.
func NewWorkflowError(code WorkflowErrorCode, message string, err error) *WorkflowError {
	return &WorkflowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
