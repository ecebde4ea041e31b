package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary search system.
var (
	// ErrInvalidRequest indicates a request that cannot be processed as given
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAllSourcesFailed indicates that no candidate source returned a snapshot
	ErrAllSourcesFailed = errors.New("all itinerary sources failed")

	// ErrSourceTimeout indicates a source did not answer in time
	ErrSourceTimeout = errors.New("source timeout")

	// ErrSourceUnavailable indicates a source could not be reached
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrItineraryNotFound indicates the requested itinerary does not exist
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrGeneratorUnavailable indicates the itinerary generator is not configured or down
	ErrGeneratorUnavailable = errors.New("itinerary generator unavailable")
)

// SourceError wraps a failure from a single candidate source.
type SourceError struct {
	// Source is the name of the failing source
	Source string

	// Err is the underlying error
	Err error

	// Retryable indicates whether repeating the query may succeed
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a retryable SourceError.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// NewSourceTimeoutError creates a retryable timeout error for a source.
func NewSourceTimeoutError(source string) *SourceError {
	return NewRetryableSourceError(source, ErrSourceTimeout)
}

// NewSourceUnavailableError creates a retryable unavailability error for a source.
func NewSourceUnavailableError(source string) *SourceError {
	return NewRetryableSourceError(source, ErrSourceUnavailable)
}

// ValidationError describes a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAllSourcesFailed reports whether err is or wraps ErrAllSourcesFailed.
func IsAllSourcesFailed(err error) bool {
	return errors.Is(err, ErrAllSourcesFailed)
}

// IsSourceTimeout reports whether err is or wraps ErrSourceTimeout.
func IsSourceTimeout(err error) bool {
	return errors.Is(err, ErrSourceTimeout)
}

// IsNotFound reports whether err is or wraps ErrItineraryNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItineraryNotFound)
}
