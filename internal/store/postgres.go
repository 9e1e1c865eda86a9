package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// Postgres is a Store backed by PostgreSQL through pgx.
type Postgres struct {
	*sqlStore
}

// OpenPostgres connects using dsn and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := migrate(ctx, db, DriverPostgres, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewPostgresFromDB(db, logger), nil
}

// NewPostgresFromDB wraps an existing, already migrated connection.
func NewPostgresFromDB(db *sql.DB, logger *slog.Logger) *Postgres {
	return &Postgres{sqlStore: newSQLStore(db, logger, dollar)}
}
