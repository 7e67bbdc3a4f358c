// Package errors defines structured application errors for the portal.
// The HTTP layer never renders these to users (every failure collapses to a
// redirect), but the codes keep server-side logs precise about what failed.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeUnauthenticated indicates the request carries no valid session.
	ErrCodeUnauthenticated ErrorCode = "unauthenticated"
	// ErrCodeBackendUnavailable indicates the backend API could not be reached
	// or failed at the transport level.
	ErrCodeBackendUnavailable ErrorCode = "backend_unavailable"
	// ErrCodeDecode indicates a response body could not be decoded as JSON.
	ErrCodeDecode ErrorCode = "decode"
	// ErrCodeTimeout indicates a backend call exceeded its deadline.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports errors.Is and errors.As via Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Unauthenticated creates a new unauthenticated error.
func Unauthenticated(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthenticated, Message: message}
}

// BackendUnavailable wraps a transport-level backend failure.
func BackendUnavailable(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeBackendUnavailable, Message: message, Cause: cause}
}

// Decode wraps a JSON decode failure.
func Decode(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeDecode, Message: message, Cause: cause}
}

// Timeout wraps a deadline-exceeded backend failure.
func Timeout(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause}
}

// Internal wraps an unclassified internal failure.
func Internal(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal when err is not
// an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}
