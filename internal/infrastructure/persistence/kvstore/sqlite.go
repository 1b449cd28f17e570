package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zencool/invoicer/internal/application/port"
	"github.com/zencool/invoicer/pkg/database"
	"go.uber.org/zap"
)

// SQLiteStore is the durable KeyValueStore backed by the kv table in the
// sqlite database.
type SQLiteStore struct {
	db     *database.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a sqlite-backed key-value store.
func NewSQLiteStore(db *database.DB, logger *zap.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		logger: logger,
	}
}

// Get reads the value under key. An absent key is reported as ok=false.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		s.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key is a no-op.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.logger.Error("Failed to remove key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Available reports whether the database still answers pings.
func (s *SQLiteStore) Available() bool {
	return s.db.Ping() == nil
}

// Verify interface compliance
var _ port.KeyValueStore = (*SQLiteStore)(nil)
