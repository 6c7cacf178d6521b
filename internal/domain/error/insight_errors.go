// Package error defines domain-specific errors for the MoneyTree backend.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightsUnavailable is returned when the AI advisor failed and no
	// cached insight sequence exists to fall back on.
	ErrInsightsUnavailable = errors.New("insights unavailable")

	// ErrAdvisorSchema is returned when the advisor response violates the
	// expected output schema. Schema violations are failures, never partial
	// acceptances.
	ErrAdvisorSchema = errors.New("advisor response violates schema")
)

// InsightErrorCode defines error codes for insight errors.
type InsightErrorCode string

const (
	ErrCodeInsightsUnavailable InsightErrorCode = "AIN-010001"
	ErrCodeAdvisorSchema       InsightErrorCode = "AIN-010002"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
