// Package snapshot stores named ledger snapshots in PostgreSQL.
package snapshot

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantwater-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantwater-backend/internal/storage"
)

const loadSQL = `SELECT blob FROM snapshots WHERE name = $1`

const saveSQL = `
INSERT INTO snapshots (name, blob)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE
SET blob       = EXCLUDED.blob,
    version    = snapshots.version + 1,
    updated_at = now()`

// Repo implements storage.SnapshotStore on the snapshots table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Load(ctx context.Context, name string) ([]byte, error) {
	var blob []byte
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, loadSQL, name).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrAbsent
	}
	if err != nil {
		return nil, storage.Unavailable("load", name, postgres.MapError(err, "snapshot", name))
	}
	return blob, nil
}

func (r *Repo) Save(ctx context.Context, name string, blob []byte) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, saveSQL, name, blob); err != nil {
		return storage.Unavailable("save", name, postgres.MapError(err, "snapshot", name))
	}
	return nil
}

// Version returns how many times the named snapshot has been written.
func (r *Repo) Version(ctx context.Context, name string) (int64, error) {
	var v int64
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT version FROM snapshots WHERE name = $1`, name).
		Scan(&v)
	if err != nil {
		return 0, postgres.MapError(err, "snapshot", name)
	}
	return v, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
