package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/marklabs/mark/internal/domain"
	_ "github.com/mattn/go-sqlite3"
)

// Fixed keys for the three persisted entries. They match the storage keys
// used by earlier versions of the app, so existing state stays readable.
const (
	keyCredential    = "mark-app-pin"
	keyProfiles      = "mark-app-profiles"
	keyActiveProfile = "mark-app-active-profile"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// LoadCredential returns the stored PIN, reporting absence via the bool.
func (s *SQLiteStore) LoadCredential(ctx context.Context) (string, bool, error) {
	return s.get(ctx, keyCredential)
}

// SaveCredential persists the PIN.
func (s *SQLiteStore) SaveCredential(ctx context.Context, pin string) error {
	return s.put(ctx, keyCredential, pin)
}

// LoadProfiles returns the stored profile collection in insertion order.
// A missing entry yields an empty collection.
func (s *SQLiteStore) LoadProfiles(ctx context.Context) ([]domain.Profile, error) {
	value, ok, err := s.get(ctx, keyProfiles)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var profiles []domain.Profile
	if err := json.Unmarshal([]byte(value), &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// SaveProfiles persists the full profile collection.
func (s *SQLiteStore) SaveProfiles(ctx context.Context, profiles []domain.Profile) error {
	value, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	return s.put(ctx, keyProfiles, string(value))
}

// LoadActiveProfileID returns the active profile reference, reporting
// absence via the bool.
func (s *SQLiteStore) LoadActiveProfileID(ctx context.Context) (string, bool, error) {
	return s.get(ctx, keyActiveProfile)
}

// SaveActiveProfileID persists the active profile reference.
func (s *SQLiteStore) SaveActiveProfileID(ctx context.Context, id string) error {
	return s.put(ctx, keyActiveProfile, id)
}

// Ensure SQLiteStore implements the Store interface.
var _ Store = (*SQLiteStore)(nil)
