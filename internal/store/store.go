// Package store persists settings overrides in a SQLite database so that
// tariffs can be adjusted without editing configuration files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iwvelando/solar-forecast/internal/settings"
)

// SQLiteStore is a key/value table of settings overrides.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure settings database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// EnsureSchema creates the settings table when it is missing.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT
);
`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// Put inserts or replaces the value stored under key. Keys are stored
// upper-cased; values are kept as text and only interpreted when resolved.
func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return fmt.Errorf("settings key must not be empty")
	}

	const upsert = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
`
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, upsert, key, value, now); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	key = strings.ToUpper(strings.TrimSpace(key))
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}

// Load returns every stored setting as a Dictionary.
func (s *SQLiteStore) Load(ctx context.Context) (settings.Dictionary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := settings.Dictionary{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return out, nil
}

// LoadFile opens the database at path, creating the schema if needed, and
// returns its settings. An empty path yields an empty Dictionary.
func LoadFile(ctx context.Context, path string) (settings.Dictionary, error) {
	if path == "" {
		return settings.Dictionary{}, nil
	}

	s, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.Load(ctx)
}
