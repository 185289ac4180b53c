package watering

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/ledger"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
)

type plantSource interface {
	ListPlants(ctx context.Context, query string) ([]domain.Plant, error)
	GetPlant(ctx context.Context, id int) (*domain.Plant, error)
}

type ledgerBook interface {
	Snapshot() ledger.Ledger
	Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error)
}

const (
	MaxUpcomingDays = 90
	MaxExportDays   = 366
)

// Options tunes calendar-facing behaviour.
type Options struct {
	// Location is the local zone "today" is computed in.
	Location *time.Location
	// AlarmAt is the "HH:MM" local time of the ICS reminder on each watering
	// day. Empty disables alarms.
	AlarmAt string
}

// Service combines the plant collection, the schedule engine and the
// watering ledger into calendar views and the toggle command.
type Service struct {
	plants plantSource
	book   ledgerBook
	engine *schedule.Engine
	clock  clockwork.Clock
	opts   Options
	log    *slog.Logger
}

// NewService creates a new watering service.
func NewService(
	log *slog.Logger,
	plants plantSource,
	book ledgerBook,
	engine *schedule.Engine,
	clock clockwork.Clock,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		plants: plants,
		book:   book,
		engine: engine,
		clock:  clock,
		opts:   opts,
		log:    log.With("service", "watering"),
	}
}

// Today returns the current calendar date in the configured zone.
func (s *Service) Today() domain.Date {
	return schedule.Today(s.clock, s.opts.Location)
}

func (s *Service) allPlants(ctx context.Context) ([]domain.Plant, error) {
	return s.plants.ListPlants(ctx, "")
}

// reportInvalid logs plants whose interval cannot be scheduled.
func (s *Service) reportInvalid(ctx context.Context, invalid []error) {
	for _, err := range invalid {
		s.log.WarnContext(ctx, "plant skipped by scheduler", slog.String("error", err.Error()))
	}
}
