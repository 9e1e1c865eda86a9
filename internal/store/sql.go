package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// sqlStore implements Store over database/sql. Backends differ only in the
// driver, placeholder style and migration set.
type sqlStore struct {
	db     *sql.DB
	logger *slog.Logger

	putQuery  string
	getQuery  string
	listQuery string
}

// newSQLStore builds the queries for a placeholder style.
func newSQLStore(db *sql.DB, logger *slog.Logger, placeholder func(int) string) *sqlStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p1, p2, p3 := placeholder(1), placeholder(2), placeholder(3)
	return &sqlStore{
		db:     db,
		logger: logger,
		putQuery: fmt.Sprintf(`INSERT INTO kv_entries (collection, entry_key, value, updated_at)
VALUES (%s, %s, %s, CURRENT_TIMESTAMP)
ON CONFLICT (collection, entry_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, p1, p2, p3),
		getQuery:  fmt.Sprintf(`SELECT value FROM kv_entries WHERE collection = %s AND entry_key = %s`, p1, p2),
		listQuery: fmt.Sprintf(`SELECT entry_key FROM kv_entries WHERE collection = %s ORDER BY entry_key`, p1),
	}
}

func questionMark(int) string { return "?" }

func dollar(i int) string { return fmt.Sprintf("$%d", i) }

// Put upserts value under collection/key.
func (s *sqlStore) Put(ctx context.Context, collection, key string, value []byte) error {
	if err := checkKey(collection, key); err != nil {
		return err
	}
	if s.db == nil {
		return ErrClosed
	}
	if value == nil {
		value = []byte{}
	}

	if _, err := s.db.ExecContext(ctx, s.putQuery, collection, key, value); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", collection, key, err)
	}
	s.logger.Debug("stored entry", slog.String("collection", collection), slog.String("key", key))
	return nil
}

// Get returns the value stored under collection/key.
func (s *sqlStore) Get(ctx context.Context, collection, key string) ([]byte, bool, error) {
	if err := checkKey(collection, key); err != nil {
		return nil, false, err
	}
	if s.db == nil {
		return nil, false, ErrClosed
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, s.getQuery, collection, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s/%s: %w", collection, key, err)
	}
	return value, true, nil
}

// ListKeys returns the keys of collection in ascending order.
func (s *sqlStore) ListKeys(ctx context.Context, collection string) ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, s.listQuery, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer func() { _ = rows.Close() }()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}
	return keys, nil
}

// Ping verifies the connection.
func (s *sqlStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *sqlStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
