package domain

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// Date is a calendar day with no time-of-day or zone. All scheduling math runs on Date.
type Date = civil.Date

// NewDate builds a Date. Out-of-range components are not normalised; use IsValid to check.
func NewDate(year int, month time.Month, day int) Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth returns the first day of the month.
func FirstOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}

// LastOfMonth returns the last day of the month.
func LastOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, DaysInMonth(year, month))
}
