package watering

import (
	"context"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

const (
	icsProductID = "-//plantwater//Watering Calendar//EN"
	icsUIDDomain = "plantwater"
)

// ExportICS writes an iCalendar feed with one all-day event per scheduled
// watering in [from, to]. UIDs are stable per (date, plant), so re-importing
// a feed updates events instead of duplicating them.
func (s *Service) ExportICS(ctx context.Context, w io.Writer, from, to domain.Date) error {
	if to.Before(from) {
		return domain.NewValidationError("to", "must not be before from")
	}
	if to.DaysSince(from) >= MaxExportDays {
		return domain.NewValidationError("to", "range must not exceed 366 days")
	}

	plants, err := s.allPlants(ctx)
	if err != nil {
		return fmt.Errorf("list plants: %w", err)
	}
	events := s.occurrences(ctx, plants, from, to)

	alarmHour, alarmMinute, withAlarm := parseHHMM(s.opts.AlarmAt)
	stamp := s.clock.Now().UTC()

	cal := ics.NewCalendarFor(icsUIDDomain)
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName("Watering Calendar")
	cal.SetXWRTimezone(s.opts.Location.String())

	for _, ev := range events {
		vev := cal.AddEvent(fmt.Sprintf("%s-%d@%s", ev.Date.String(), ev.PlantID, icsUIDDomain))
		vev.SetDtStampTime(stamp)
		vev.SetAllDayStartAt(ev.Date.In(time.UTC))
		vev.SetAllDayEndAt(ev.Date.AddDays(1).In(time.UTC))
		vev.SetSummary("Water " + ev.CommonName)
		vev.SetDescription(fmt.Sprintf("Plant #%d is due for watering", ev.PlantID))
		if ev.Watered {
			vev.SetStatus(ics.ObjectStatusConfirmed)
		}
		if withAlarm {
			alarm := vev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetDescription("Time to water " + ev.CommonName)
			alarm.SetTrigger(fmt.Sprintf("PT%dH%dM", alarmHour, alarmMinute))
		}
	}

	// RFC 5545 requires CRLF; the library defaults to the host newline.
	if err := cal.SerializeTo(w, ics.WithNewLineWindows); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

// parseHHMM parses "HH:MM". ok is false for empty or malformed input.
func parseHHMM(s string) (hour, minute int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
