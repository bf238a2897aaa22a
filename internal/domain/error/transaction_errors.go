// Package error defines domain-specific errors for the Daily Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or not owned by the user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not income or expense.
	ErrInvalidTransactionType = errors.New("transaction type must be 'income' or 'expense'")

	// ErrInvalidCategory is returned when the category is empty or exceeds the maximum length.
	ErrInvalidCategory = errors.New("category must be between 1 and 100 characters")

	// ErrInvalidAmount is returned when the amount is not positive, exceeds the maximum
	// magnitude, or carries more than two fraction digits.
	ErrInvalidAmount = errors.New("amount must be positive with at most two fraction digits")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrPaymentMethodTooLong is returned when the payment method exceeds the maximum length.
	ErrPaymentMethodTooLong = errors.New("payment method exceeds maximum length")

	// ErrLinkedEntryNotFound is returned when the referenced entry does not exist
	// or does not belong to the user.
	ErrLinkedEntryNotFound = errors.New("linked entry not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidCategory        TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010003"
	ErrCodeDescriptionTooLong     TransactionErrorCode = "TXN-010004"
	ErrCodePaymentMethodTooLong   TransactionErrorCode = "TXN-010005"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeLinkedEntryNotFound TransactionErrorCode = "TXN-020002"
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
