// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingTransactionFields is returned when amount or category is absent.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")

	// ErrUnknownCategory is returned when the category is not in the category table.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCategoryTypeMismatch is returned when a category does not accept the transaction type.
	ErrCategoryTypeMismatch = errors.New("category does not match transaction type")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrEmptyPatch is returned when an update carries no field to change.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrInconsistentSign is returned by a store asked to keep an amount whose sign contradicts its type.
	ErrInconsistentSign = errors.New("amount sign does not match transaction type")

	// ErrIdempotencyKeyReused is returned when an idempotency key is replayed while the first request is unfinished.
	ErrIdempotencyKeyReused = errors.New("idempotency key already in use")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeUnknownCategory          TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidTransactionID     TransactionErrorCode = "TXN-010011"
	ErrCodeEmptyPatch               TransactionErrorCode = "TXN-010012"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "TXN-010013"
	ErrCodeIdempotencyKeyReused     TransactionErrorCode = "TXN-010014"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
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

// IsValidationError reports whether err is a transaction error raised by input validation.
func IsValidationError(err error) bool {
	var txnErr *TransactionError
	if !errors.As(err, &txnErr) {
		return false
	}
	switch txnErr.Code {
	case ErrCodeTransactionNotFound, ErrCodeIdempotencyKeyReused, ErrCodeTransactionInternalError:
		return false
	default:
		return true
	}
}
