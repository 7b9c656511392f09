// Package errors provides structured error types for chartscript.
//
// Every failure in this module is a programmer or configuration error
// surfaced synchronously to the caller. Errors carry a machine-readable
// [Code] so the CLI and HTTP server can map them to exit codes and status
// codes without string matching.
//
// # Error Codes
//
//   - NULL_ARGUMENT: a required argument was nil or empty
//   - INVALID_ARGUMENT: an argument was present but not acceptable
//   - INVALID_STATE: an operation was called in the wrong order
//   - TYPE_MISMATCH: an untyped value resolved to an unexpected type
//   - INVALID_*: input validation failures (format, path, chart id)
//   - NOT_FOUND: a stored resource does not exist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNullArgument, "date must not be nil")
//	if errors.Is(err, errors.ErrCodeNullArgument) {
//	    // Handle programming error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Programming errors raised by the value engine
	ErrCodeNullArgument    Code = "NULL_ARGUMENT"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidState    Code = "INVALID_STATE"
	ErrCodeTypeMismatch    Code = "TYPE_MISMATCH"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidChartID Code = "INVALID_CHART_ID"
	ErrCodeInvalidPlugin  Code = "INVALID_PLUGIN"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeStorage      Code = "STORAGE_ERROR"

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

// NullArgument reports a missing required argument by name.
func NullArgument(name string) *Error {
	return New(ErrCodeNullArgument, "%s must not be null", name)
}

// TypeMismatch reports an untyped value that resolved to the wrong type.
func TypeMismatch(name string, expected, found any) *Error {
	return New(ErrCodeTypeMismatch, "%s: expected %T, found %T", name, expected, found)
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

// IsUserError reports whether err stems from bad input rather than an
// internal or storage failure.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeNullArgument, ErrCodeInvalidArgument, ErrCodeInvalidState,
		ErrCodeTypeMismatch, ErrCodeInvalidInput, ErrCodeInvalidFormat,
		ErrCodeInvalidPath, ErrCodeInvalidChartID, ErrCodeInvalidPlugin:
		return true
	}
	return false
}
