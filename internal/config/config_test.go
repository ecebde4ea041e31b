package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")
	assert.Equal(t, "10s", cfg.Server.ShutdownTimeout.String(), "default shutdown timeout")

	// Timeout defaults
	assert.Equal(t, "5s", cfg.Timeouts.GlobalSearch.String(), "default global search timeout")
	assert.Equal(t, "2s", cfg.Timeouts.PerSource.String(), "default per-source timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Empty(t, cfg.App.SeedPath, "embedded seed catalog by default")

	// Optional backends are off by default
	assert.False(t, cfg.UsesDatabase())
	assert.False(t, cfg.UsesCache())
	assert.False(t, cfg.UsesGenerator())
	assert.Equal(t, "5m0s", cfg.Cache.TTL.String())
	assert.Equal(t, "20s", cfg.Generator.Timeout.String())
	assert.Equal(t, 20.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":           "3000",
		"SERVER_READ_TIMEOUT":   "30s",
		"SERVER_WRITE_TIMEOUT":  "45s",
		"TIMEOUT_GLOBAL_SEARCH": "10s",
		"TIMEOUT_PER_SOURCE":    "3s",
		"LOG_LEVEL":             "debug",
		"LOG_FORMAT":            "console",
		"APP_ENV":               "production",
		"SEED_PATH":             "/etc/itineraries/catalog.json",
		"DATABASE_URL":          "postgres://app:secret@db:5432/itineraries?sslmode=disable",
		"REDIS_URL":             "redis://cache:6379/0",
		"CACHE_TTL":             "90s",
		"GENERATOR_URL":         "http://generator:9000/generate",
		"GENERATOR_TIMEOUT":     "15s",
		"RATE_LIMIT_RPS":        "2.5",
		"RATE_LIMIT_BURST":      "5",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "45s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "10s", cfg.Timeouts.GlobalSearch.String())
	assert.Equal(t, "3s", cfg.Timeouts.PerSource.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/etc/itineraries/catalog.json", cfg.App.SeedPath)
	assert.True(t, cfg.UsesDatabase())
	assert.True(t, cfg.UsesCache())
	assert.True(t, cfg.UsesGenerator())
	assert.Equal(t, "1m30s", cfg.Cache.TTL.String())
	assert.Equal(t, "15s", cfg.Generator.Timeout.String())
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

// TestLoad_Validation tests that invalid settings are rejected with a descriptive error.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr string
	}{
		{name: "port zero", envVars: map[string]string{"SERVER_PORT": "0"}, wantErr: "SERVER_PORT must be between 1 and 65535"},
		{name: "port too high", envVars: map[string]string{"SERVER_PORT": "65536"}, wantErr: "SERVER_PORT must be between 1 and 65535"},
		{name: "zero read timeout", envVars: map[string]string{"SERVER_READ_TIMEOUT": "0s"}, wantErr: "SERVER_READ_TIMEOUT must be positive"},
		{name: "negative global timeout", envVars: map[string]string{"TIMEOUT_GLOBAL_SEARCH": "-1s"}, wantErr: "TIMEOUT_GLOBAL_SEARCH must be positive"},
		{name: "zero cache ttl", envVars: map[string]string{"CACHE_TTL": "0s"}, wantErr: "CACHE_TTL must be positive"},
		{
			name:    "per-source equals global",
			envVars: map[string]string{"TIMEOUT_GLOBAL_SEARCH": "2s", "TIMEOUT_PER_SOURCE": "2s"},
			wantErr: "TIMEOUT_PER_SOURCE (2s) should be less than TIMEOUT_GLOBAL_SEARCH (2s)",
		},
		{name: "invalid log level", envVars: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: "LOG_LEVEL must be one of"},
		{name: "invalid log format", envVars: map[string]string{"LOG_FORMAT": "xml"}, wantErr: "LOG_FORMAT must be one of"},
		{name: "invalid app env", envVars: map[string]string{"APP_ENV": "test"}, wantErr: "APP_ENV must be one of"},
		{name: "database url wrong scheme", envVars: map[string]string{"DATABASE_URL": "mysql://db:3306/x"}, wantErr: "DATABASE_URL scheme must be one of"},
		{name: "redis url without host", envVars: map[string]string{"REDIS_URL": "cache:6379"}, wantErr: "REDIS_URL"},
		{name: "generator url relative", envVars: map[string]string{"GENERATOR_URL": "/generate"}, wantErr: "GENERATOR_URL must be an absolute URL"},
		{name: "negative rate", envVars: map[string]string{"RATE_LIMIT_RPS": "-1"}, wantErr: "RATE_LIMIT_RPS must not be negative"},
		{name: "zero burst", envVars: map[string]string{"RATE_LIMIT_BURST": "0"}, wantErr: "RATE_LIMIT_BURST must be at least 1"},
		{name: "unparseable duration", envVars: map[string]string{"CACHE_TTL": "soon"}, wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.envVars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoad_RateLimitDisabled tests that a zero rate disables limiting regardless of burst.
func TestLoad_RateLimitDisabled(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"RATE_LIMIT_RPS": "0", "RATE_LIMIT_BURST": "0"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT":   "1m30s",
		"SERVER_WRITE_TIMEOUT":  "2m",
		"TIMEOUT_GLOBAL_SEARCH": "500ms",
		"TIMEOUT_PER_SOURCE":    "100ms",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1m30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "500ms", cfg.Timeouts.GlobalSearch.String())
	assert.Equal(t, "100ms", cfg.Timeouts.PerSource.String())
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helper methods.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env      string
		wantDev  bool
		wantProd bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDev, cfg.IsDevelopment())
			assert.Equal(t, tt.wantProd, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars unsets all config-related environment variables for the
// duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"TIMEOUT_GLOBAL_SEARCH",
		"TIMEOUT_PER_SOURCE",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
		"SEED_PATH",
		"DATABASE_URL",
		"REDIS_URL",
		"CACHE_TTL",
		"GENERATOR_URL",
		"GENERATOR_TIMEOUT",
		"RATE_LIMIT_RPS",
		"RATE_LIMIT_BURST",
	}
	for _, v := range envVars {
		// Setenv registers the restore; Unsetenv then clears it
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
