package watering

import (
	"context"
	"fmt"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/ledger"
)

// Stats returns summary counters relative to ref and ref's month.
func (s *Service) Stats(ctx context.Context, ref domain.Date) (*domain.Stats, error) {
	plants, err := s.allPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	snapshot := s.book.Snapshot()

	return &domain.Stats{
		TotalPlants:      len(plants),
		ScheduledToday:   ledger.CountScheduledToday(s.engine, plants, ref),
		PendingToday:     ledger.CountPendingToday(s.engine, plants, snapshot, ref),
		MonthlyWatering:  ledger.CountMonthlyWatering(s.engine, plants, ref.Year, ref.Month),
		WateredThisMonth: ledger.CountWateredInMonth(plants, snapshot, ref.Year, ref.Month),
	}, nil
}

// Pending returns the plants due on ref that have not been watered yet.
func (s *Service) Pending(ctx context.Context, ref domain.Date) ([]domain.Plant, error) {
	plants, err := s.allPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return ledger.PendingOn(s.engine, plants, s.book.Snapshot(), ref), nil
}
