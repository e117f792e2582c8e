// Package errors provides consistent error types for the Shepherd CLI.
// It defines two main categories: UserError (fixable by the user) and
// SystemError (storage or environment issues). No operation is retried
// automatically; failures are terminal for that single operation.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrSermonNotFound   = errors.New("sermon not found")
	ErrVisitNotFound    = errors.New("visit not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrWebhookNotFound  = errors.New("webhook not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNameRequired     = errors.New("name is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrDatabaseCorrupt  = errors.New("database corrupted")
	ErrPermissionDenied = errors.New("permission denied")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, a reference to a member that does not exist.
type UserError struct {
	Message    string // what happened
	Suggestion string // how to fix it
	Field      string // the field that caused the error (optional)
	Value      string // the invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{Message: message, Field: field, Value: value, Suggestion: suggestion}
}

// SystemError represents a system-level error the user cannot directly fix.
// Examples: a failed write to the data store, corrupted persisted state.
type SystemError struct {
	Message string // what happened
	Cause   error  // the underlying error
	Op      string // the operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause, Op: op}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsSystemError extracts a SystemError from an error chain.
func AsSystemError(err error) (*SystemError, bool) {
	var se *SystemError
	ok := errors.As(err, &se)
	return se, ok
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
