package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	*sqlStore
	path string
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a private in-memory database.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := migrate(ctx, db, DriverSQLite, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{sqlStore: newSQLStore(db, logger, questionMark), path: path}, nil
}

// Path returns the database path the store was opened with.
func (s *SQLite) Path() string {
	return s.path
}
