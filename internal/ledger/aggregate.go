package ledger

import (
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
)

// CountScheduledToday counts plants due on ref. Plants with an invalid interval
// are never scheduled.
func CountScheduledToday(e *schedule.Engine, plants []domain.Plant, ref domain.Date) int {
	due, _ := e.DueOn(ref, plants)
	return len(due)
}

// CountPendingToday counts plants due on ref that are not yet watered.
func CountPendingToday(e *schedule.Engine, plants []domain.Plant, l Ledger, ref domain.Date) int {
	due, _ := e.DueOn(ref, plants)
	n := 0
	for _, p := range due {
		if !l.IsWatered(ref, p.ID) {
			n++
		}
	}
	return n
}

// PendingOn returns the plants due on ref that are not yet watered.
func PendingOn(e *schedule.Engine, plants []domain.Plant, l Ledger, ref domain.Date) []domain.Plant {
	due, _ := e.DueOn(ref, plants)
	var pending []domain.Plant
	for _, p := range due {
		if !l.IsWatered(ref, p.ID) {
			pending = append(pending, p)
		}
	}
	return pending
}

// CountMonthlyWatering counts scheduled watering-day occurrences across all
// plants within the month.
func CountMonthlyWatering(e *schedule.Engine, plants []domain.Plant, year int, month time.Month) int {
	from, to := domain.FirstOfMonth(year, month), domain.LastOfMonth(year, month)
	total := 0
	for _, p := range plants {
		n, err := e.OccurrencesInRange(from, to, p)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// CountWateredInMonth counts watered records in the month that belong to a
// plant in the collection.
func CountWateredInMonth(plants []domain.Plant, l Ledger, year int, month time.Month) int {
	ids := make(map[int]struct{}, len(plants))
	for _, p := range plants {
		ids[p.ID] = struct{}{}
	}
	n := 0
	for k := range l.watered {
		if k.Year != year || k.Month != month {
			continue
		}
		if _, ok := ids[k.PlantID]; ok {
			n++
		}
	}
	return n
}
