package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shared error taxonomy. Callers classify failures
// with errors.Is (or the Is* helpers below) rather than string matching.
var (
	// ErrInvalidRequest indicates caller-supplied input violates a precondition.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates a referenced resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates an operation is invalid given current state.
	ErrConflict = errors.New("conflict")

	// ErrUpstreamUnavailable indicates a transport-level failure talking to the
	// offers provider (network failure, non-success status).
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrUpstreamTimeout indicates the provider call did not complete in time.
	// Caller-initiated cancellation is reported as context.Canceled instead.
	ErrUpstreamTimeout = errors.New("upstream provider timeout")

	// ErrInternal indicates an unanticipated failure. It is surfaced as an
	// opaque error without leaking internal detail.
	ErrInternal = errors.New("internal error")
)

// ValidationError is a field-level validation failure.
type ValidationError struct {
	// Field is the name of the offending input field
	Field string

	// Message describes why the field is invalid
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is makes ValidationError match ErrInvalidRequest under errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// UpstreamError wraps a provider transport failure with context about which
// provider failed and the HTTP status it returned (0 for network errors).
type UpstreamError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Status is the HTTP status code returned, or 0 if the call never completed
	Status int

	// Err is the underlying cause
	Err error
}

// NewUpstreamError creates an UpstreamError wrapping the given cause.
func NewUpstreamError(provider string, status int, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Status: status, Err: err}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider %s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying cause.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest so that
// errors.Is(err, ErrInvalidRequest) holds for the result.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err indicates a state conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUpstreamUnavailable reports whether err is a provider transport failure.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsUpstreamTimeout reports whether err is a provider timeout.
func IsUpstreamTimeout(err error) bool {
	return errors.Is(err, ErrUpstreamTimeout)
}
