// Package errors provides error handling utilities.
package errors

import (
	"fmt"
	"strings"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates the job specification failed business-rule validation
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeCalculation indicates a broken invariant inside the costing pipeline
	TypeCalculation Type = "CALCULATION_ERROR"

	// TypeRates indicates a rate-table loading or resolution error
	TypeRates Type = "RATES_ERROR"

	// TypeInput indicates malformed input at the boundary (bad JSON etc.)
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a referenced entity does not exist
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// ValidationError carries the complete list of rule violations found in a
// job specification. Validation never fail-fasts: callers get every problem
// at once so all of them can be corrected in one pass.
type ValidationError struct {
	Violations []string `json:"violations"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] specification invalid: %s",
		TypeValidation, strings.Join(e.Violations, "; "))
}

// Validation creates a ValidationError from collected violations
func Validation(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidation extracts a ValidationError, if err is one
func AsValidation(err error) (*ValidationError, bool) {
	v, ok := err.(*ValidationError)
	return v, ok
}

// Calculation creates a calculation error naming the failing pipeline stage.
// These are defects, not user errors: valid input must never produce one.
func Calculation(stage, message string) *Error {
	return Newf(TypeCalculation, "%s: %s", stage, message).WithContext("stage", stage)
}

// Calculationf creates a formatted calculation error
func Calculationf(stage, format string, args ...any) *Error {
	return Calculation(stage, fmt.Sprintf(format, args...))
}

// Rates creates a rate-table error
func Rates(message string, cause error) *Error {
	return Wrap(TypeRates, message, cause)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// NotFound creates a not found error
func NotFound(entity, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", entity, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
