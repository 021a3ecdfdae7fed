// Package errors provides structured error types for toporder.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes split into two groups:
//   - Contract violations raised by the order-maintenance core
//     (NEGATIVE_WEIGHT, INVALID_WEIGHT, INVALID_EXPANSION_STATE,
//     STATE_INVARIANT_VIOLATION). None of them is transient; callers are
//     expected to treat them as programming errors.
//   - Input errors raised by the tooling around the core (INVALID_*,
//     FILE_NOT_FOUND, INTERNAL_ERROR).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNegativeWeight, "weight %g on edge %v->%v", w, from, to)
//	if errors.Is(err, errors.ErrCodeNegativeWeight) {
//	    // reject the edge
//	}
//
//	// Wrap existing errors
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
	// Core contract violations
	ErrCodeNegativeWeight        Code = "NEGATIVE_WEIGHT"
	ErrCodeInvalidWeight         Code = "INVALID_WEIGHT"
	ErrCodeInvalidExpansionState Code = "INVALID_EXPANSION_STATE"
	ErrCodeStateInvariant        Code = "STATE_INVARIANT_VIOLATION"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// IsContractViolation reports whether err carries one of the codes the
// order-maintenance core raises for broken caller or internal contracts.
func IsContractViolation(err error) bool {
	switch GetCode(err) {
	case ErrCodeNegativeWeight, ErrCodeInvalidWeight, ErrCodeInvalidExpansionState, ErrCodeStateInvariant:
		return true
	}
	return false
}
