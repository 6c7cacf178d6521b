// Package error defines domain-specific errors for the MoneyTree backend.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is zero, negative, or unparsable.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidCategory is returned when the category is outside the closed enumeration.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrCategoryTypeMismatch is returned when type and category break the
	// income/expense pairing invariant.
	ErrCategoryTypeMismatch = errors.New("category does not match transaction type")

	// ErrInvalidAllowance is returned when the monthly allowance is not positive.
	ErrInvalidAllowance = errors.New("invalid monthly allowance")

	// ErrLedgerPersist is returned when the ledger snapshot could not be written.
	// The in-memory state is guaranteed untouched when this is returned.
	ErrLedgerPersist = errors.New("failed to persist ledger state")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidTransactionAmount LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidCategory          LedgerErrorCode = "LDG-010003"
	ErrCodeCategoryTypeMismatch     LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidAllowance         LedgerErrorCode = "LDG-010005"

	// Persistence errors (02XXXX)
	ErrCodeLedgerPersist LedgerErrorCode = "LDG-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
