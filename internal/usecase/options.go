// Package usecase contains the business logic for itinerary search.
// It gathers candidates from every source concurrently, then filters,
// scores and ranks them.
package usecase

import "time"

// Default timeout values.
const (
	DefaultGlobalTimeout = 3 * time.Second
	DefaultSourceTimeout = 2 * time.Second
)

// Config contains configuration options for the search use case.
type Config struct {
	// GlobalTimeout bounds the whole candidate snapshot
	GlobalTimeout time.Duration

	// SourceTimeout bounds a single source query
	SourceTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		SourceTimeout: DefaultSourceTimeout,
	}
}

// merge fills unset values of c from the defaults.
func (c *Config) merge() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.GlobalTimeout > 0 {
		cfg.GlobalTimeout = c.GlobalTimeout
	}
	if c.SourceTimeout > 0 {
		cfg.SourceTimeout = c.SourceTimeout
	}
	return cfg
}
