package watering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Toggle flips the watered mark for a plant on a date and returns the new state.
// The date must be a scheduled watering day for the plant. When persisting
// fails the new state is still returned together with a
// *domain.StorageUnavailableError; the mark is kept in memory.
func (s *Service) Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error) {
	if !date.IsValid() {
		return false, domain.NewValidationError("date", "invalid calendar date")
	}

	p, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return false, err
	}

	due, err := s.engine.IsWateringDay(date, *p)
	if err != nil {
		return false, err
	}
	if !due {
		return false, domain.NewValidationError("date",
			fmt.Sprintf("%s is not a watering day for plant %d", date, plantID))
	}

	watered, err := s.book.Toggle(ctx, date, plantID)
	if err != nil {
		s.log.WarnContext(ctx, "watering mark not persisted",
			slog.Int("plant_id", plantID),
			slog.String("date", date.String()),
			slog.String("error", err.Error()),
		)
		return watered, err
	}

	s.log.InfoContext(ctx, "watering toggled",
		slog.Int("plant_id", plantID),
		slog.String("date", date.String()),
		slog.Bool("watered", watered),
	)
	return watered, nil
}
