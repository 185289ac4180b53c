// Command prune-ledger drops watering ledger days older than the configured
// retention period and saves the result. It is intended to be invoked by an
// external cron job while the server is stopped, or against a store the
// server does not write concurrently.
//
// Flags:
//
//	--dry-run  report what would be removed without saving
//
// Exit codes: 0 = success, 1 = error, 2 = invalid flags.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/plantwater-backend/internal/app"
	"github.com/heartmarshall/plantwater-backend/internal/config"
	"github.com/heartmarshall/plantwater-backend/internal/ledger"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup completes before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("prune-ledger", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "report what would be removed without saving")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	backends, err := app.OpenBackends(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		return 1
	}
	defer backends.Close()

	today := schedule.Today(clockwork.NewRealClock(), cfg.Schedule.Location)
	threshold := today.AddDays(-cfg.Storage.RetentionDays)

	book := ledger.Open(ctx, backends.Snapshots, cfg.Storage.RecordName, logger)

	if *dryRun {
		current := book.Snapshot()
		logger.Info("dry run",
			slog.Int("would_remove", current.Len()-current.Prune(threshold).Len()),
			slog.String("threshold", threshold.String()),
		)
		return 0
	}

	removed, err := book.Prune(ctx, threshold)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.String("threshold", threshold.String()),
		)
		return 1
	}

	logger.Info("prune completed",
		slog.Int("removed", removed),
		slog.String("threshold", threshold.String()),
	)
	return 0
}
