package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the global middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, so every later log line carries the request ID
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//
// Rate limiting is not global; see Chain.
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID(log))
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the middleware applied to the versioned API group only.
// The health check stays outside of it so probes are never throttled.
func Chain(rateLimit RateLimitConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RateLimit(rateLimit),
	}
}
