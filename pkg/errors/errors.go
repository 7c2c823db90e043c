// Package errors provides structured error types for the salon site.
//
// Errors carry a machine-readable [Code] so that the HTTP layer and the CLI
// can decide how to present a failure without string matching:
//
//   - INVALID_*: rejected input (profile ids, palette ids, forms, config)
//   - *NOT_FOUND: lookups against closed registries
//   - UNKNOWN_VARIANT: drift between the layout registry and the resolver
//   - STORAGE / INTERNAL_ERROR: backend and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidProfile, "unknown layout profile %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidProfile) {
//	    // 400 Bad Request
//	}
//
//	err = errors.Wrap(errors.ErrCodeStorage, cause, "persist %s", key)
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidProfile Code = "INVALID_PROFILE"
	ErrCodeInvalidPalette Code = "INVALID_PALETTE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidContent Code = "INVALID_CONTENT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeNotFound              Code = "NOT_FOUND"
	ErrCodeConfigurationNotFound Code = "CONFIGURATION_NOT_FOUND"
	ErrCodeUnknownVariant        Code = "UNKNOWN_VARIANT"

	// Backend errors
	ErrCodeStorage Code = "STORAGE"
	ErrCodeTimeout Code = "TIMEOUT"

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

// HTTPStatus maps an error to the status code the site answers with.
// Invalid input is the caller's fault, failed lookups are 404, and
// everything else is treated as a server error.
func HTTPStatus(err error) int {
	code := GetCode(err)
	switch {
	case code == "":
		return http.StatusInternalServerError
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(string(code), "NOT_FOUND"):
		return http.StatusNotFound
	case code == ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Join collects several errors into one. Nil entries are skipped and nil is
// returned when nothing is left.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As is errors.As, re-exported so callers need only this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}
