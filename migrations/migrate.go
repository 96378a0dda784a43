// Package migrations embeds the goose SQL migrations and applies them
// against a live database handle.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// setup points goose at the embedded migrations with the pgx dialect.
func setup() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return nil
}

// Up applies all pending migrations.
func Up(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	if err := goose.Down(db, "."); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	return nil
}

// Status prints the migration status to stdout.
func Status(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	if err := goose.Status(db, "."); err != nil {
		return fmt.Errorf("failed to report migration status: %w", err)
	}

	return nil
}
