// Package errors provides structured error types for supertile.
//
// Every failure the layout engine can produce carries a machine-readable
// [Code] so the CLI, the HTTP API and the table exporter can react to it
// without matching on message text:
//   - INVALID_REQUEST: overlapping positions, unknown kind, arity mismatch
//   - NO_VALID_ORIENTATION: strict orientation lookup found no match
//   - IMPOSSIBLE_ROUTING: a slot holds a dangling or overcrowded wire
//   - UNSUPPORTED_WIRE: a compound wire outside the whitelist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRequest, "position %d used twice", p)
//	if errors.Is(err, errors.ErrCodeInvalidRequest) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read catalog %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout failures
	ErrCodeInvalidRequest     Code = "INVALID_REQUEST"
	ErrCodeNoValidOrientation Code = "NO_VALID_ORIENTATION"
	ErrCodeImpossibleRouting  Code = "IMPOSSIBLE_ROUTING"
	ErrCodeUnsupportedWire    Code = "UNSUPPORTED_WIRE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

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

// IsLayoutFailure reports whether err is one of the four terminal layout
// failures, as opposed to an I/O or configuration problem.
func IsLayoutFailure(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidRequest, ErrCodeNoValidOrientation, ErrCodeImpossibleRouting, ErrCodeUnsupportedWire:
		return true
	}
	return false
}
