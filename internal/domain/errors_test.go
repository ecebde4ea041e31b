package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceError(t *testing.T) {
	tests := []struct {
		name           string
		source         string
		underlyingErr  error
		wantContains   []string
		wantUnwrapable bool
		wantRetryable  bool
	}{
		{
			name:           "error message includes source and underlying error",
			source:         "seed_catalog",
			underlyingErr:  errors.New("file not readable"),
			wantContains:   []string{"seed_catalog", "file not readable"},
			wantUnwrapable: true,
			wantRetryable:  false, // Default is non-retryable
		},
		{
			name:           "error message with different source",
			source:         "published",
			underlyingErr:  errors.New("connection refused"),
			wantContains:   []string{"published", "connection refused"},
			wantUnwrapable: true,
			wantRetryable:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSourceError(tt.source, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}

			if tt.wantUnwrapable {
				assert.True(t, errors.Is(err, tt.underlyingErr))
			}

			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableSourceError(t *testing.T) {
	underlying := errors.New("temporary network failure")

	err := NewRetryableSourceError("published", underlying)

	assert.Contains(t, err.Error(), "published")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, err.Retryable)
}

func TestNewSourceTimeoutAndUnavailableErrors(t *testing.T) {
	timeout := NewSourceTimeoutError("published")
	assert.Contains(t, timeout.Error(), "published")
	assert.True(t, errors.Is(timeout, ErrSourceTimeout))
	assert.True(t, timeout.Retryable)

	unavailable := NewSourceUnavailableError("seed_catalog")
	assert.Contains(t, unavailable.Error(), "seed_catalog")
	assert.True(t, errors.Is(unavailable, ErrSourceUnavailable))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		message   string
		wantError string
	}{
		{
			name:      "destination field validation",
			field:     "destination",
			message:   "must not be empty",
			wantError: "destination: must not be empty",
		},
		{
			name:      "nested field validation",
			field:     "days[0].events[1].fare[0].amount",
			message:   "must not be negative",
			wantError: "days[0].events[1].fare[0].amount: must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.wantError, err.Error())
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
			assert.True(t, IsInvalidRequest(err))
		})
	}
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"destination"},
			wantContains: "field destination is required",
		},
		{
			name:         "multiple arguments",
			format:       "%s must be between %d and %d",
			args:         []interface{}{"id", 1, 99},
			wantContains: "id must be between 1 and 99",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{name: "IsInvalidRequest with sentinel", checkFunc: IsInvalidRequest, err: ErrInvalidRequest, wantResult: true},
		{name: "IsInvalidRequest with wrapped error", checkFunc: IsInvalidRequest, err: WrapInvalidRequest("test"), wantResult: true},
		{name: "IsInvalidRequest with different error", checkFunc: IsInvalidRequest, err: ErrAllSourcesFailed, wantResult: false},
		{name: "IsAllSourcesFailed with sentinel", checkFunc: IsAllSourcesFailed, err: ErrAllSourcesFailed, wantResult: true},
		{name: "IsAllSourcesFailed with different error", checkFunc: IsAllSourcesFailed, err: ErrInvalidRequest, wantResult: false},
		{name: "IsSourceTimeout with wrapped timeout", checkFunc: IsSourceTimeout, err: NewSourceTimeoutError("test"), wantResult: true},
		{name: "IsSourceTimeout with different error", checkFunc: IsSourceTimeout, err: ErrInvalidRequest, wantResult: false},
		{name: "IsNotFound with sentinel", checkFunc: IsNotFound, err: ErrItineraryNotFound, wantResult: true},
		{name: "IsNotFound with different error", checkFunc: IsNotFound, err: ErrGeneratorUnavailable, wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
