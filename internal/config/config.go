// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Store     StoreConfig
	Cache     CacheConfig
	Generator GeneratorConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for itinerary search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"5s"`
	PerSource    time.Duration `env:"TIMEOUT_PER_SOURCE" envDefault:"2s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// SeedPath replaces the embedded seed catalog when set
	SeedPath string `env:"SEED_PATH"`
}

// StoreConfig selects the published itinerary store.
// An empty DatabaseURL keeps published itineraries in memory.
type StoreConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
}

// CacheConfig configures the optional Redis read cache in front of the store.
type CacheConfig struct {
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// GeneratorConfig configures the optional itinerary generator proxy.
type GeneratorConfig struct {
	URL     string        `env:"GENERATOR_URL"`
	Timeout time.Duration `env:"GENERATOR_TIMEOUT" envDefault:"20s"`
}

// RateLimitConfig configures the per-IP request limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"TIMEOUT_GLOBAL_SEARCH", cfg.Timeouts.GlobalSearch},
		{"TIMEOUT_PER_SOURCE", cfg.Timeouts.PerSource},
		{"CACHE_TTL", cfg.Cache.TTL},
		{"GENERATOR_TIMEOUT", cfg.Generator.Timeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// Per-source timeout must leave room for the global one
	if cfg.Timeouts.PerSource >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_SOURCE (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerSource, cfg.Timeouts.GlobalSearch)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if err := validateURL("DATABASE_URL", cfg.Store.DatabaseURL, "postgres", "postgresql"); err != nil {
		return err
	}
	if err := validateURL("REDIS_URL", cfg.Cache.RedisURL, "redis", "rediss"); err != nil {
		return err
	}
	if err := validateURL("GENERATOR_URL", cfg.Generator.URL, "http", "https"); err != nil {
		return err
	}

	if cfg.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	return nil
}

// validateURL checks an optional URL setting against the allowed schemes.
func validateURL(name, raw string, schemes ...string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", name)
	}

	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			return nil
		}
	}
	return fmt.Errorf("%s scheme must be one of: %s; got %q", name, strings.Join(schemes, ", "), u.Scheme)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// UsesDatabase reports whether published itineraries are stored in PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.Store.DatabaseURL != ""
}

// UsesCache reports whether the Redis read cache is enabled.
func (c *Config) UsesCache() bool {
	return c.Cache.RedisURL != ""
}

// UsesGenerator reports whether the itinerary generator proxy is enabled.
func (c *Config) UsesGenerator() bool {
	return c.Generator.URL != ""
}
