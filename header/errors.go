package header

import (
	"fmt"

	"github.com/ghettovoice/msghdr/internal/errorutil"
)

// Error is a string type for the header sentinel errors.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is matched by every error caused by the caller input.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidName is the cause of a [ValidationError] rejecting a header name.
	ErrInvalidName Error = "invalid header name"
	// ErrInvalidValue is the cause of a [ValidationError] rejecting a header value.
	ErrInvalidValue Error = "invalid header value"
)

// ValidationError is returned when a header name or value is rejected.
// Use [errors.Is] with [ErrInvalidName] or [ErrInvalidValue] to tell the causes apart.
type ValidationError struct {
	// Name is the header name as supplied by the caller.
	Name string
	// Cause is either [ErrInvalidName] or [ErrInvalidValue].
	Cause Error
	// Reason describes the violated rule.
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q: %s", e.Cause, e.Name, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{e.Cause, ErrInvalidArgument}
}

func newNameError(name, reason string) *ValidationError {
	return &ValidationError{Name: name, Cause: ErrInvalidName, Reason: reason}
}

func newValueError(name, reason string) *ValidationError {
	return &ValidationError{Name: name, Cause: ErrInvalidValue, Reason: reason}
}

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
