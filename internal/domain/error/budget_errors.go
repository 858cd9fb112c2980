// Package error defines domain-specific errors for the BatchFlow application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidMonthKey is returned when a month key is not a valid YYYY-MM string.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrNegativePlannedAmount is returned when a planned amount is negative.
	ErrNegativePlannedAmount = errors.New("planned amount must not be negative")

	// ErrInvalidMonthRange is returned when a month window is empty or reversed.
	ErrInvalidMonthRange = errors.New("invalid month range")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthKey       BudgetErrorCode = "BUD-010001"
	ErrCodeNegativePlannedAmount BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidMonthRange     BudgetErrorCode = "BUD-010003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
