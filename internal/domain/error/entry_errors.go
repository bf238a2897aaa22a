// Package error defines domain-specific errors for the Daily Ledger application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found or not owned by the user.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryTitleTooLong is returned when the entry title exceeds the maximum length.
	ErrEntryTitleTooLong = errors.New("entry title exceeds maximum length")

	// ErrEntryMoodTooLong is returned when the entry mood exceeds the maximum length.
	ErrEntryMoodTooLong = errors.New("entry mood exceeds maximum length")

	// ErrEntryDateRequired is returned when the entry date is missing.
	ErrEntryDateRequired = errors.New("entry date is required")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryTitleTooLong EntryErrorCode = "ENT-010001"
	ErrCodeEntryMoodTooLong  EntryErrorCode = "ENT-010002"
	ErrCodeEntryDateRequired EntryErrorCode = "ENT-010003"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound EntryErrorCode = "ENT-020001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
