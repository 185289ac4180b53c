// Package reminder runs the daily watering reminder.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

type pendingSource interface {
	Today() domain.Date
	Pending(ctx context.Context, ref domain.Date) ([]domain.Plant, error)
}

type flusher interface {
	Flush(ctx context.Context) error
}

// Config controls the reminder schedule.
type Config struct {
	// At is the local "HH:MM" the job fires at.
	At       string
	Location *time.Location
	Timeout  time.Duration
}

// Reminder logs the plants still waiting for water once a day and retries
// any ledger save that failed earlier.
type Reminder struct {
	scheduler *gocron.Scheduler
	pending   pendingSource
	book      flusher
	cfg       Config
	log       *slog.Logger
}

// New creates a Reminder. The scheduler is not started.
func New(log *slog.Logger, pending pendingSource, book flusher, cfg Config) *Reminder {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Reminder{
		scheduler: gocron.NewScheduler(cfg.Location),
		pending:   pending,
		book:      book,
		cfg:       cfg,
		log:       log.With("component", "reminder"),
	}
}

// Start schedules the daily job and starts the scheduler in the background.
func (r *Reminder) Start() error {
	_, err := r.scheduler.Every(1).Day().At(r.cfg.At).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout)
		defer cancel()
		if _, err := r.Run(ctx); err != nil {
			r.log.Error("reminder run failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder at %q: %w", r.cfg.At, err)
	}

	r.scheduler.StartAsync()
	r.log.Info("reminder scheduled",
		slog.String("at", r.cfg.At),
		slog.String("timezone", r.cfg.Location.String()),
	)
	return nil
}

// Stop stops the scheduler. Jobs in flight are not interrupted.
func (r *Reminder) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}

// Run performs one reminder pass and returns the number of pending plants.
// A failed flush is logged but does not fail the run.
func (r *Reminder) Run(ctx context.Context) (int, error) {
	today := r.pending.Today()

	plants, err := r.pending.Pending(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("pending plants for %s: %w", today, err)
	}

	for _, p := range plants {
		r.log.InfoContext(ctx, "watering reminder",
			slog.String("date", today.String()),
			slog.Int("plant_id", p.ID),
			slog.String("common_name", p.CommonName),
		)
	}
	r.log.InfoContext(ctx, "reminder summary",
		slog.String("date", today.String()),
		slog.Int("pending", len(plants)),
	)

	if err := r.book.Flush(ctx); err != nil {
		r.log.WarnContext(ctx, "ledger flush failed", slog.String("error", err.Error()))
	}
	return len(plants), nil
}
