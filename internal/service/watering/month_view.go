package watering

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
)

// MonthView builds the calendar grid for a month, marking which plants are
// due each day and whether they were watered. ref marks "today".
func (s *Service) MonthView(ctx context.Context, year int, month time.Month, ref domain.Date) (*domain.MonthView, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	plants, err := s.allPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	snapshot := s.book.Snapshot()
	grid := schedule.MonthGrid(year, month)

	view := &domain.MonthView{
		Year:          year,
		Month:         month,
		LeadingBlanks: grid.LeadingBlanks,
		Days:          make([]domain.CalendarDay, 0, len(grid.Days)),
	}

	var invalid []error
	for i, day := range grid.Days {
		due, bad := s.engine.DueOn(day, plants)
		if i == 0 {
			invalid = bad
		}

		cd := domain.CalendarDay{
			Date:    day,
			IsToday: day == ref,
			Plants:  make([]domain.ScheduledPlant, 0, len(due)),
		}
		for _, p := range due {
			cd.Plants = append(cd.Plants, domain.ScheduledPlant{
				PlantID:    p.ID,
				CommonName: p.CommonName,
				Watered:    snapshot.IsWatered(day, p.ID),
			})
		}
		view.Days = append(view.Days, cd)
	}
	s.reportInvalid(ctx, invalid)

	return view, nil
}

func validateMonth(year int, month time.Month) error {
	var errs []domain.FieldError
	if year < 1 || year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1 and 9999"})
	}
	if month < time.January || month > time.December {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
