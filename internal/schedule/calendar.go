package schedule

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Today returns the current calendar date in loc.
func Today(clock clockwork.Clock, loc *time.Location) domain.Date {
	return civil.DateOf(clock.Now().In(loc))
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Grid is the layout of a month calendar: LeadingBlanks empty cells
// (Sunday-first week) followed by every day of the month.
type Grid struct {
	LeadingBlanks int
	Days          []domain.Date
}

// MonthGrid lays out the days of a month.
func MonthGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := domain.DaysInMonth(year, month)

	days := make([]domain.Date, n)
	for i := range n {
		days[i] = domain.NewDate(year, month, i+1)
	}
	return Grid{
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}
}
