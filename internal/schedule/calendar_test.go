package schedule

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

func TestToday(t *testing.T) {
	t.Parallel()

	// 2025-06-12 22:30 UTC is already June 13 in Istanbul and still June 12 in New York.
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 12, 22, 30, 0, 0, time.UTC))

	tests := []struct {
		tz   string
		want domain.Date
	}{
		{"UTC", date(2025, time.June, 12)},
		{"Europe/Istanbul", date(2025, time.June, 13)},
		{"America/New_York", date(2025, time.June, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Today(clock, ParseTimezone(tt.tz)))
		})
	}
}

func TestToday_FollowsClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 6, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, date(2025, time.June, 6), Today(clock, time.UTC))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, date(2025, time.June, 7), Today(clock, time.UTC))
}

func TestParseTimezone_FallsBackToUTC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, ParseTimezone("Not/AZone"))
	assert.Equal(t, "Europe/Istanbul", ParseTimezone("Europe/Istanbul").String())
}

func TestMonthGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		year       int
		month      time.Month
		wantBlanks int
		wantDays   int
	}{
		{"june 2025 starts sunday", 2025, time.June, 0, 30},
		{"july 2025 starts tuesday", 2025, time.July, 2, 31},
		{"february 2025 starts saturday", 2025, time.February, 6, 28},
		{"february 2024 leap", 2024, time.February, 4, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := MonthGrid(tt.year, tt.month)
			assert.Equal(t, tt.wantBlanks, g.LeadingBlanks)
			require.Len(t, g.Days, tt.wantDays)
			assert.Equal(t, domain.NewDate(tt.year, tt.month, 1), g.Days[0])
			assert.Equal(t, domain.NewDate(tt.year, tt.month, tt.wantDays), g.Days[tt.wantDays-1])
		})
	}
}

func TestFrequencyTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		interval int
		want     domain.FrequencyTier
	}{
		{1, domain.FrequencyFrequent},
		{5, domain.FrequencyFrequent},
		{6, domain.FrequencyModerate},
		{12, domain.FrequencyModerate},
		{13, domain.FrequencyRare},
		{365, domain.FrequencyRare},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FrequencyTier(tt.interval), "interval %d", tt.interval)
	}
}
