// Package error defines domain-specific errors for the Finance Tracker application.
package error

// HTTPErrorCode defines error codes raised by the HTTP boundary itself.
// Format: HTTP-XXYYYY where XX is category and YYYY is specific error.
type HTTPErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeRateLimited    HTTPErrorCode = "HTTP-010001"
	ErrCodeInvalidRequest HTTPErrorCode = "HTTP-010002"
	ErrCodeInvalidQuery   HTTPErrorCode = "HTTP-010003"

	// Internal errors (99XXXX)
	ErrCodeInternal HTTPErrorCode = "HTTP-990001"
)
