// Package errors provides structured error types for tipkit.
//
// Every failure the library can report carries a machine-readable [Code] so
// that hosts can decide locally what to do with it. Layout-time failures
// (a target that is not an element, geometry that is not available yet)
// are never meant to reach an end user: hosts swallow them and simply do not
// draw the tooltip. Configuration-time failures (bad placement name, bad
// offset string, unreadable scene file) are returned to the caller.
//
// # Error Codes
//
//   - INVALID_*: input and configuration validation failures
//   - UNRECOGNIZED_PLACEMENT: placement outside top, bottom, left, right
//   - MISSING_GEOMETRY: a bounding box was not available during layout
//   - NOT_FOUND: a named element does not exist
//   - INTERNAL_ERROR: unexpected internal failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnrecognizedPlacement, "unknown placement %q", name)
//	if errors.Is(err, errors.ErrCodeUnrecognizedPlacement) {
//	    // reject the configuration
//	}
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidTargetKind Code = "INVALID_TARGET_KIND"
	ErrCodeInvalidOffset     Code = "INVALID_OFFSET"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"

	// Placement errors
	ErrCodeUnrecognizedPlacement Code = "UNRECOGNIZED_PLACEMENT"

	// Layout errors
	ErrCodeMissingGeometry Code = "MISSING_GEOMETRY"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsInput reports whether err is a caller mistake rather than an internal
// failure. The HTTP service maps these to 400 responses.
func IsInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidTargetKind, ErrCodeInvalidOffset,
		ErrCodeInvalidConfig, ErrCodeInvalidStyle, ErrCodeUnrecognizedPlacement:
		return true
	}
	return false
}
