// Package errors provides centralized error definitions and error handling
// utilities for sprout. It defines the sentinel errors, the typed
// InvalidInputError raised by the growth controller, and classification
// helpers used by the TUI to decide how an error is shown.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewInvalidInputError(errors.ReasonInvalidArea).
//		WithField("area").WithValue("-5")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInvalidInput) { ... }
//
//	var inputErr *errors.InvalidInputError
//	if errors.As(err, &inputErr) {
//		fmt.Println(inputErr.Reason)
//	}
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrPlantNotFound indicates that a plant name is not in the catalog.
	ErrPlantNotFound = New("plant not found")
	// ErrEmptyCatalog indicates that a catalog was built with no plants.
	ErrEmptyCatalog = New("catalog has no plants")
)

// Reasons carried by InvalidInputError. The first two are the only ones a
// user can trigger from the planting form.
const (
	ReasonNoPlantSelected = "no plant selected"
	ReasonInvalidArea     = "invalid area"
	ReasonAlreadyGrowing  = "session already growing"
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// SproutError is the base interface for typed errors in this module.
type SproutError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// InvalidInputError
// -----------------------------------------------------------------------------

// InvalidInputError is returned when the start-planting action is given a
// missing plant or an unusable area. It always wraps ErrInvalidInput.
//
// Example:
//
//	err := errors.NewInvalidInputError(errors.ReasonNoPlantSelected).WithField("plant")
//	fmt.Println(err) // "invalid input [field=plant]: no plant selected"
type InvalidInputError struct {
	baseError
	Reason string
	Field  string
	Value  any
}

// NewInvalidInputError creates a new InvalidInputError for the given reason.
func NewInvalidInputError(reason string) *InvalidInputError {
	return &InvalidInputError{
		baseError: baseError{
			message:    reason,
			cause:      ErrInvalidInput,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Reason: reason,
	}
}

// WithField adds a field name to the error context.
func (e *InvalidInputError) WithField(field string) *InvalidInputError {
	e.Field = field
	return e
}

// WithValue adds the rejected value to the error context.
func (e *InvalidInputError) WithValue(value any) *InvalidInputError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *InvalidInputError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "invalid input"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("invalid input [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.Reason)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsInvalidInput reports whether err is, or wraps, an InvalidInputError.
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return As(err, &inputErr)
}

// ReasonOf returns the InvalidInputError reason carried by err, or "" if err
// is not an input error.
func ReasonOf(err error) string {
	var inputErr *InvalidInputError
	if As(err, &inputErr) {
		return inputErr.Reason
	}
	return ""
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var sproutErr SproutError
	if As(err, &sproutErr) {
		return sproutErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity of an error.
// Returns SeverityError for errors that don't implement SproutError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var sproutErr SproutError
	if As(err, &sproutErr) {
		return sproutErr.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
