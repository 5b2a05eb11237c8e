// Package error defines domain-specific errors for the Personal Finance application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or
	// belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when an income does not exist or
	// belongs to another user.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrTransactionNotFound is returned when a transaction does not
	// exist or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when a budget does not exist or
	// belongs to another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetClosed is returned when attempting to modify a budget
	// that has already been closed.
	ErrBudgetClosed = errors.New("budget is closed")

	// ErrInvalidAmount is returned when an amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrInvalidBudgetPeriod is returned when a budget end date
	// precedes its start date.
	ErrInvalidBudgetPeriod = errors.New("budget end date precedes start date")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       LedgerErrorCode = "LED-010001"
	ErrCodeBudgetClosed        LedgerErrorCode = "LED-010002"
	ErrCodeInvalidBudgetPeriod LedgerErrorCode = "LED-010003"

	// Not-found errors (02XXXX)
	ErrCodeExpenseNotFound     LedgerErrorCode = "LED-020001"
	ErrCodeIncomeNotFound      LedgerErrorCode = "LED-020002"
	ErrCodeTransactionNotFound LedgerErrorCode = "LED-020003"
	ErrCodeBudgetNotFound      LedgerErrorCode = "LED-020004"

	// Internal errors (99XXXX)
	ErrCodeLedgerInternalError LedgerErrorCode = "LED-990001"
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
