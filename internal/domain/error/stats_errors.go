// Package error defines domain-specific errors for the Daily Ledger application.
package error

import "errors"

// Stats domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidMonth is returned when the month filter is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year filter is not a positive number.
	ErrInvalidYear = errors.New("year must be a positive number")

	// ErrInvalidStatsType is returned when the transaction type filter is not valid.
	ErrInvalidStatsType = errors.New("type must be 'income' or 'expense'")

	// ErrInvalidDateFormat is returned when a date parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// StatsErrorCode defines error codes for stats errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate  StatsErrorCode = "STA-010001"
	ErrCodeMissingEndDate    StatsErrorCode = "STA-010002"
	ErrCodeInvalidDateRange  StatsErrorCode = "STA-010003"
	ErrCodeInvalidMonth      StatsErrorCode = "STA-010004"
	ErrCodeInvalidYear       StatsErrorCode = "STA-010005"
	ErrCodeInvalidStatsType  StatsErrorCode = "STA-010006"
	ErrCodeInvalidDateFormat StatsErrorCode = "STA-010007"

	// Internal errors (99XXXX)
	ErrCodeStatsInternalError StatsErrorCode = "STA-990001"
)

// StatsError represents a stats error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
