// Package main is the entry point for the itinerary search service.
//
//	@title						Itinerary Search API
//	@version					1.0.0
//	@description				Searches seed and user-published travel itineraries, ranks them by relevance, prices fare trees and proxies an itinerary generator.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripweave/itinerary-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tripweave/itinerary-search/docs"

	// Application layers
	"github.com/tripweave/itinerary-search/internal/adapter/cache"
	"github.com/tripweave/itinerary-search/internal/adapter/generator"
	itineraryhttp "github.com/tripweave/itinerary-search/internal/adapter/http"
	"github.com/tripweave/itinerary-search/internal/adapter/http/middleware"
	"github.com/tripweave/itinerary-search/internal/adapter/source/published"
	"github.com/tripweave/itinerary-search/internal/adapter/source/seed"
	"github.com/tripweave/itinerary-search/internal/adapter/store/memory"
	"github.com/tripweave/itinerary-search/internal/adapter/store/postgres"
	"github.com/tripweave/itinerary-search/internal/config"
	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
	"github.com/tripweave/itinerary-search/internal/infrastructure/timeutil"
	"github.com/tripweave/itinerary-search/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLogger := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("database", cfg.UsesDatabase()).
		Bool("cache", cfg.UsesCache()).
		Bool("generator", cfg.UsesGenerator()).
		Msg("Configuration loaded")

	ctx := context.Background()

	app, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.close()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, appLogger.Logger)
	itineraryhttp.RegisterRoutesWithMiddleware(e, app.handler, middleware.Chain(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})...)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	if err := serve(e, addr, cfg.Server.ShutdownTimeout, quit); err != nil {
		// log.Fatal exits without running deferred calls
		app.close()
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
	})
	logger.Install(l)
	return l
}

// app holds the wired handler and the resources to release on shutdown.
type app struct {
	handler *itineraryhttp.ItineraryHandler
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp wires sources, store, use cases and the HTTP handler.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	clock := timeutil.NewRealClock()

	// Seed catalog; a bad catalog is fatal at startup rather than a 503 per search
	seedSource := seed.NewAdapter(cfg.App.SeedPath)
	count, err := seedSource.Load()
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}
	log.Info().Int("itineraries", count).Str("path", cfg.App.SeedPath).Msg("Seed catalog loaded")

	// Published itinerary store
	var (
		store     domain.ItineraryStore
		storeKind string
	)
	if cfg.UsesDatabase() {
		pool, err := postgres.Connect(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)

		if err := postgres.RunMigrations(ctx, pool, postgres.Migrations()); err != nil {
			a.close()
			return nil, err
		}
		store = postgres.NewStore(pool, clock)
		storeKind = "postgres"
	} else {
		store = memory.NewStore(clock)
		storeKind = "memory"
	}

	cacheStatus := "disabled"
	if cfg.UsesCache() {
		client, err := cache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })

		store = cache.NewStore(store, cache.NewCache(client, cfg.Cache.TTL))
		cacheStatus = "redis"
	}

	// Seed first: ties in relevance keep catalog entries ahead of published ones
	registry := domain.NewSourceRegistry()
	registry.Register(seedSource)
	registry.Register(published.NewAdapter(store))
	log.Info().Strs("sources", registry.Names()).Msg("Itinerary sources registered")

	searchUseCase := usecase.NewItinerarySearchUseCase(registry.GetAll(), &usecase.Config{
		GlobalTimeout: cfg.Timeouts.GlobalSearch,
		SourceTimeout: cfg.Timeouts.PerSource,
	})
	libraryUseCase := usecase.NewItineraryLibraryUseCase(store)

	var gen domain.ItineraryGenerator
	generatorStatus := "disabled"
	if cfg.UsesGenerator() {
		gen = generator.NewClient(generator.Config{
			URL:     cfg.Generator.URL,
			Timeout: cfg.Generator.Timeout,
		})
		generatorStatus = "ok"
	}
	draftUseCase := usecase.NewDraftUseCase(gen)

	a.handler = itineraryhttp.NewItineraryHandler(searchUseCase, libraryUseCase, draftUseCase, seedSource).
		WithComponent("store", storeKind).
		WithComponent("cache", cacheStatus).
		WithComponent("generator", generatorStatus)

	return a, nil
}

// serve runs the server until a signal arrives on quit, then shuts it down
// gracefully. It returns the error if the server fails to start.
func serve(e *echo.Echo, addr string, shutdownTimeout time.Duration, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server on %s: %w", addr, err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
	return nil
}
