// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the context key for storing request ID.
	requestIDKey = "request_id"
	// maxRequestIDLength bounds client supplied ids.
	maxRequestIDLength = 128
)

// RequestID returns middleware that generates or propagates request IDs.
// If the incoming request has a usable X-Request-ID header, it uses that value.
// Otherwise, it generates a new UUID.
//
// The id is stored on the echo context, echoed in the response header and
// placed in the request context together with a request-scoped logger, so
// use cases can log with logger.FromContext and outbound clients can
// forward it.
func RequestID(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := strings.TrimSpace(c.Request().Header.Get(RequestIDHeader))
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			reqLogger := base.With().Str("request_id", reqID).Logger()
			ctx := logger.ContextWithRequestID(c.Request().Context(), reqID)
			ctx = reqLogger.WithContext(ctx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
