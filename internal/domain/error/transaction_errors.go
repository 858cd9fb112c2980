// Package error defines domain-specific errors for the BatchFlow application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a transaction amount is missing, zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDate is returned when a transaction date is not a valid YYYY-MM-DD string.
	ErrInvalidDate = errors.New("invalid date")

	// ErrSplitSumMismatch is returned when split amounts do not sum to the transaction total.
	ErrSplitSumMismatch = errors.New("split amounts must sum to the transaction amount")

	// ErrEmptySplits is returned when a split transaction carries no split rows.
	ErrEmptySplits = errors.New("split transaction requires at least one split")

	// ErrSubcategoryMismatch is returned when a subcategory does not belong to the assigned category.
	ErrSubcategoryMismatch = errors.New("subcategory does not belong to category")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidDate            TransactionErrorCode = "TXN-010003"
	ErrCodeSplitSumMismatch       TransactionErrorCode = "TXN-010004"
	ErrCodeEmptySplits            TransactionErrorCode = "TXN-010005"
	ErrCodeSubcategoryMismatch    TransactionErrorCode = "TXN-010006"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
