package domain

import (
	"fmt"
	"time"
)

// RecordKey identifies one (calendar date, plant) watering record.
// Month is 1-based here; the persisted string form is handled by the ledger codec.
type RecordKey struct {
	Year    int
	Month   time.Month
	Day     int
	PlantID int
}

// Date returns the calendar date part of the key.
func (k RecordKey) Date() Date {
	return NewDate(k.Year, k.Month, k.Day)
}

func (k RecordKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d#%d", k.Year, int(k.Month), k.Day, k.PlantID)
}

// Less orders keys by date, then plant id.
func (k RecordKey) Less(o RecordKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	if k.Day != o.Day {
		return k.Day < o.Day
	}
	return k.PlantID < o.PlantID
}

// MonthView is the calendar grid for one month.
type MonthView struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []CalendarDay
}

// CalendarDay lists the plants scheduled on one day of a MonthView.
type CalendarDay struct {
	Date    Date
	IsToday bool
	Plants  []ScheduledPlant
}

// ScheduledPlant is a plant due on a given day, with its watered flag.
type ScheduledPlant struct {
	PlantID    int
	CommonName string
	Watered    bool
}

// Stats holds summary counters for the dashboard header.
type Stats struct {
	TotalPlants      int
	ScheduledToday   int
	PendingToday     int
	MonthlyWatering  int
	WateredThisMonth int
}

// UpcomingWatering is one scheduled watering in an upcoming-days listing.
type UpcomingWatering struct {
	Date       Date
	PlantID    int
	CommonName string
	Watered    bool
}
