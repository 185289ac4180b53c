// Command migrate applies or rolls back the embedded database migrations.
// The target database is chosen by storage.driver: postgres uses
// DATABASE_DSN, sqlite uses storage.sqlite_path.
//
// Usage:
//
//	migrate up | down | status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // sqlite3 driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/plantwater-backend/internal/app"
	"github.com/heartmarshall/plantwater-backend/internal/config"
	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/migrations"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(1)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, dialect, err := openDB(cfg)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(dialect, db)
	if err != nil {
		logger.Error("create migration provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, provider, command, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func openDB(cfg *config.Config) (*sql.DB, goose.Dialect, error) {
	switch cfg.Storage.StorageDriver() {
	case domain.StorageDriverPostgres:
		db, err := sql.Open("pgx", cfg.Database.DSN)
		return db, goose.DialectPostgres, err
	case domain.StorageDriverSQLite:
		db, err := sql.Open("sqlite3", cfg.Storage.SQLitePath)
		return db, goose.DialectSQLite3, err
	default:
		return nil, "", fmt.Errorf("storage driver %q has no migrations", cfg.Storage.Driver)
	}
}

func run(ctx context.Context, provider *goose.Provider, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Printf("%-6d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
