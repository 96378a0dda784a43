// Package main implements the entry point for the airport API server,
// which manages the flight catalog (airports, routes, airplanes, crews,
// flights) and user ticket orders.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/vportnov/airport-api/internal/config"
	"github.com/vportnov/airport-api/internal/platform/logger"
	"github.com/vportnov/airport-api/migrations"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run migrations and exit: up, down, or status")
	flag.Parse()

	// A .env file is a local development convenience; absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrateCmd != "" {
		err := runMigrationCommand(db, *migrateCmd)
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database", "error", closeErr)
		}
		if err != nil {
			log.Fatalf("Migration command failed: %v", err)
		}
		return
	}

	if err := migrations.Up(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	appLogger.Info("database migrations applied")

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runMigrationCommand executes a one-shot migration command and returns
// without starting the server.
func runMigrationCommand(db *sql.DB, cmd string) error {
	switch cmd {
	case "up":
		return migrations.Up(db)
	case "down":
		return migrations.Down(db)
	case "status":
		return migrations.Status(db)
	default:
		return fmt.Errorf("unknown migration command %q (want up, down, or status)", cmd)
	}
}
