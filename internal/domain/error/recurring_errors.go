// Package error defines domain-specific errors for the BatchFlow application.
package error

import "errors"

// Recurring rule domain errors.
var (
	// ErrRuleNotFound is returned when a recurring rule is not found in the system.
	ErrRuleNotFound = errors.New("recurring rule not found")

	// ErrInvalidFrequency is returned when the frequency is not one of the supported values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrEndBeforeStart is returned when a rule's end date precedes its start date.
	ErrEndBeforeStart = errors.New("end date must not be before start date")

	// ErrMissingLabel is returned when a rule has no label.
	ErrMissingLabel = errors.New("label is required")
)

// RecurringErrorCode defines error codes for recurring rule errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency RecurringErrorCode = "REC-010001"
	ErrCodeEndBeforeStart   RecurringErrorCode = "REC-010002"
	ErrCodeMissingLabel     RecurringErrorCode = "REC-010003"
	ErrCodeRuleNotFound     RecurringErrorCode = "REC-010004"
)

// RecurringError represents a recurring rule error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
