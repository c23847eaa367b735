// Package errors provides structured error types for the ashby-plot application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the geometry core and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NON_POSITIVE_VALUE: log-axis transform fed a value ≤ 0
//   - INSUFFICIENT_POINTS: geometry degeneracy, absorbed by fallbacks
//   - UNKNOWN_*: lookup failures in typed mapping tables
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidScale, "scale factor must be positive, got %v", f)
//	if errors.Is(err, errors.ErrCodeInvalidScale) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidData, origErr, "row %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidScale  Code = "INVALID_SCALE"
	ErrCodeInvalidMethod Code = "INVALID_METHOD"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidAxis   Code = "INVALID_AXIS"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"

	// Geometry errors
	ErrCodeNonPositiveValue   Code = "NON_POSITIVE_VALUE"
	ErrCodeInsufficientPoints Code = "INSUFFICIENT_POINTS"

	// Data model lookup errors
	ErrCodeUnknownProperty Code = "UNKNOWN_PROPERTY"
	ErrCodeUnknownCategory Code = "UNKNOWN_CATEGORY"

	// File and data errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInvalidData  Code = "INVALID_DATA"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
