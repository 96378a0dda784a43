package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle stores run their queries against.
// Both *sql.DB and *sql.Tx satisfy it, so a store can work on the shared
// pool or inside a transaction without changing its queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
