// Package sqlite stores named ledger snapshots in a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/plantwater-backend/internal/storage"
	"github.com/heartmarshall/plantwater-backend/migrations"
)

const loadSQL = `SELECT blob FROM snapshots WHERE name = ?`

const saveSQL = `
INSERT INTO snapshots (name, blob) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET
    blob       = excluded.blob,
    version    = snapshots.version + 1,
    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one writer; sqlite serialises writes anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if err := migrations.Up(ctx, goose.DialectSQLite3, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Store implements storage.SnapshotStore on the snapshots table.
type Store struct {
	db *sql.DB
}

// New creates a snapshot store over an opened database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, loadSQL, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAbsent
	}
	if err != nil {
		return nil, storage.Unavailable("load", name, err)
	}
	return blob, nil
}

func (s *Store) Save(ctx context.Context, name string, blob []byte) error {
	if _, err := s.db.ExecContext(ctx, saveSQL, name, blob); err != nil {
		return storage.Unavailable("save", name, err)
	}
	return nil
}

// Version returns how many times the named snapshot has been written.
func (s *Store) Version(ctx context.Context, name string) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, `SELECT version FROM snapshots WHERE name = ?`, name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrAbsent
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot %s version: %w", name, err)
	}
	return v, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
