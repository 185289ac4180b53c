package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/plantwater-backend/internal/adapter/memory"
	"github.com/heartmarshall/plantwater-backend/internal/adapter/postgres"
	pgplant "github.com/heartmarshall/plantwater-backend/internal/adapter/postgres/plant"
	"github.com/heartmarshall/plantwater-backend/internal/adapter/postgres/snapshot"
	"github.com/heartmarshall/plantwater-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/plantwater-backend/internal/config"
	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/storage"
	"github.com/heartmarshall/plantwater-backend/migrations"
)

type snapshotBackend interface {
	storage.SnapshotStore
	Ping(ctx context.Context) error
}

type plantStore interface {
	List(ctx context.Context, search string) ([]domain.Plant, error)
	GetByID(ctx context.Context, id int) (*domain.Plant, error)
	MaxID(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p domain.Plant) (*domain.Plant, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Backends bundles the storage collaborators selected by storage.driver.
type Backends struct {
	Snapshots snapshotBackend
	Plants    plantStore
	Tx        txRunner

	closers []func()
}

// Close releases database handles in reverse order of opening.
func (b *Backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// OpenBackends opens the configured storage. The plant collection lives in
// memory for every driver except postgres.
func OpenBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	b := &Backends{
		Plants: memory.NewPlantRepo(),
		Tx:     memory.NewTxManager(),
	}

	switch cfg.Storage.StorageDriver() {
	case domain.StorageDriverMemory:
		b.Snapshots = storage.NewMemory()

	case domain.StorageDriverFile:
		f, err := storage.NewFile(cfg.Storage.Dir, logger)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		b.Snapshots = f

	case domain.StorageDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		b.closers = append(b.closers, func() { _ = db.Close() })
		b.Snapshots = sqlite.New(db)

	case domain.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		b.closers = append(b.closers, pool.Close)

		db := stdlib.OpenDBFromPool(pool)
		b.closers = append(b.closers, func() { _ = db.Close() })
		if err := migrations.Up(ctx, goose.DialectPostgres, db); err != nil {
			b.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}

		b.Snapshots = snapshot.New(pool)
		b.Plants = pgplant.New(pool)
		b.Tx = postgres.NewTxManager(pool)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	logger.Info("storage opened", slog.String("driver", cfg.Storage.Driver))
	return b, nil
}
