package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/vportnov/airport-api/internal/config"
	"github.com/vportnov/airport-api/internal/platform/postgres"
	"github.com/vportnov/airport-api/internal/platform/redis"
	"github.com/vportnov/airport-api/internal/service/auth"
	"github.com/vportnov/airport-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore         store.UserStore
	crewStore         store.CrewStore
	airplaneTypeStore store.AirplaneTypeStore
	airplaneStore     store.AirplaneStore
	airportStore      store.AirportStore
	routeStore        store.RouteStore
	flightStore       store.FlightStore
	orderStore        store.OrderStore

	// Services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	// Flight list cache; nil when no Redis URL is configured.
	flightCache *redis.FlightListCache
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.GetBcryptCost(), logger)
	app.crewStore = postgres.NewPostgresCrewStore(db, logger)
	app.airplaneTypeStore = postgres.NewPostgresAirplaneTypeStore(db, logger)
	app.airplaneStore = postgres.NewPostgresAirplaneStore(db, logger)
	app.airportStore = postgres.NewPostgresAirportStore(db, logger)
	app.routeStore = postgres.NewPostgresRouteStore(db, logger)
	app.flightStore = postgres.NewPostgresFlightStore(db, logger)
	app.orderStore = postgres.NewPostgresOrderStore(db, logger)

	if cfg.Cache.RedisURL != "" {
		ttl := time.Duration(cfg.Cache.FlightTTLSeconds) * time.Second
		app.flightCache, err = redis.New(cfg.Cache.RedisURL, ttl, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize flight cache: %w", err)
		}
		logger.Info("flight list cache initialized", "ttl_seconds", cfg.Cache.FlightTTLSeconds)
	} else {
		logger.Info("no Redis URL configured, flight list caching disabled")
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.flightCache != nil {
		if err := app.flightCache.Close(); err != nil {
			app.logger.Error("error closing flight cache", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
