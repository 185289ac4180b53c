// Package schedule decides which calendar days a plant is due for watering.
//
// Every plant shares one anchor date. A day is a watering day when it falls on
// or after the anchor and its offset from the anchor, in whole calendar days,
// is a multiple of the plant's interval. All functions here are pure.
package schedule

import (
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// DefaultAnchor is the epoch of every watering cycle unless configured otherwise.
var DefaultAnchor = domain.NewDate(2025, time.June, 6)

// Engine evaluates watering schedules relative to a fixed anchor date.
type Engine struct {
	anchor domain.Date
}

// New creates an Engine anchored at the given date.
func New(anchor domain.Date) *Engine {
	return &Engine{anchor: anchor}
}

// Anchor returns the configured anchor date.
func (e *Engine) Anchor() domain.Date {
	return e.anchor
}

// IsWateringDay reports whether date is a scheduled watering day for plant.
func (e *Engine) IsWateringDay(date domain.Date, plant domain.Plant) (bool, error) {
	if err := checkInterval(plant); err != nil {
		return false, err
	}
	offset := date.DaysSince(e.anchor)
	return offset >= 0 && offset%plant.WateringIntervalDays == 0, nil
}

// LedgerKey returns the record key for a (date, plant) pair.
func LedgerKey(date domain.Date, plantID int) domain.RecordKey {
	return domain.RecordKey{
		Year:    date.Year,
		Month:   date.Month,
		Day:     date.Day,
		PlantID: plantID,
	}
}

// DueOn returns the plants scheduled on date, in input order. Plants with an
// invalid interval are never due; their errors are collected in invalid.
func (e *Engine) DueOn(date domain.Date, plants []domain.Plant) (due []domain.Plant, invalid []error) {
	for _, p := range plants {
		ok, err := e.IsWateringDay(date, p)
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		if ok {
			due = append(due, p)
		}
	}
	return due, invalid
}

// NextWateringDay returns the first watering day on or after from.
func (e *Engine) NextWateringDay(from domain.Date, plant domain.Plant) (domain.Date, error) {
	if err := checkInterval(plant); err != nil {
		return domain.Date{}, err
	}
	if from.Before(e.anchor) {
		return e.anchor, nil
	}
	rem := from.DaysSince(e.anchor) % plant.WateringIntervalDays
	if rem == 0 {
		return from, nil
	}
	return from.AddDays(plant.WateringIntervalDays - rem), nil
}

// OccurrencesInRange counts watering days in the inclusive range [from, to].
func (e *Engine) OccurrencesInRange(from, to domain.Date, plant domain.Plant) (int, error) {
	if err := checkInterval(plant); err != nil {
		return 0, err
	}
	if to.Before(from) {
		return 0, nil
	}
	first, err := e.NextWateringDay(from, plant)
	if err != nil {
		return 0, err
	}
	if first.After(to) {
		return 0, nil
	}
	return to.DaysSince(first)/plant.WateringIntervalDays + 1, nil
}

func checkInterval(plant domain.Plant) error {
	if plant.WateringIntervalDays <= 0 {
		return &domain.InvalidIntervalError{PlantID: plant.ID, Interval: plant.WateringIntervalDays}
	}
	return nil
}
