// Package store provides the key-value storage behind the names service.
//
// Values are opaque byte slices grouped into collections, mirroring a
// hash-per-collection layout: Put overwrites, Get reports absence with a
// false flag rather than an error, and ListKeys returns keys in ascending
// order. Backends are selected by driver name through Open.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Supported drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown store driver")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
	// ErrEmptyKey is returned when a collection or key is empty.
	ErrEmptyKey = errors.New("collection and key must not be empty")
)

// Store is a collection-scoped key-value store.
type Store interface {
	Put(ctx context.Context, collection, key string, value []byte) error
	Get(ctx context.Context, collection, key string) ([]byte, bool, error)
	ListKeys(ctx context.Context, collection string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver string
	// Path is the SQLite database file, or ":memory:".
	Path string
	// DSN is the PostgreSQL connection string.
	DSN    string
	Logger *slog.Logger
}

// Drivers lists the accepted driver names.
func Drivers() []string {
	return []string{DriverMemory, DriverSQLite, DriverPostgres}
}

// Open creates the backend named by cfg.Driver and applies any pending
// migrations. An empty driver selects the memory backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch cfg.Driver {
	case "", DriverMemory:
		logger.Debug("opening store", slog.String("driver", DriverMemory))
		return NewMemory(), nil
	case DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		logger.Debug("opening store", slog.String("driver", DriverSQLite), slog.String("path", path))
		return OpenSQLite(ctx, path, logger)
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres store requires a dsn")
		}
		logger.Debug("opening store", slog.String("driver", DriverPostgres))
		return OpenPostgres(ctx, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func checkKey(collection, key string) error {
	if collection == "" || key == "" {
		return ErrEmptyKey
	}
	return nil
}
