package watering

import (
	"context"
	"fmt"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Upcoming lists scheduled waterings for the days [from, from+days).
func (s *Service) Upcoming(ctx context.Context, from domain.Date, days int) ([]domain.UpcomingWatering, error) {
	if days < 1 || days > MaxUpcomingDays {
		return nil, domain.NewValidationError("days", "must be between 1 and 90")
	}

	plants, err := s.allPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return s.occurrences(ctx, plants, from, from.AddDays(days-1)), nil
}

// occurrences walks every day in [from, to] and lists the due plants.
func (s *Service) occurrences(ctx context.Context, plants []domain.Plant, from, to domain.Date) []domain.UpcomingWatering {
	snapshot := s.book.Snapshot()
	var out []domain.UpcomingWatering
	var invalid []error
	for d := from; !d.After(to); d = d.AddDays(1) {
		due, bad := s.engine.DueOn(d, plants)
		if d == from {
			invalid = bad
		}
		for _, p := range due {
			out = append(out, domain.UpcomingWatering{
				Date:       d,
				PlantID:    p.ID,
				CommonName: p.CommonName,
				Watered:    snapshot.IsWatered(d, p.ID),
			})
		}
	}
	s.reportInvalid(ctx, invalid)
	return out
}
