package rest

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

var _ wateringService = &wateringServiceMock{}

type wateringServiceMock struct {
	ExportICSFunc func(ctx context.Context, w io.Writer, from domain.Date, to domain.Date) error
	MonthViewFunc func(ctx context.Context, year int, month time.Month, ref domain.Date) (*domain.MonthView, error)
	StatsFunc     func(ctx context.Context, ref domain.Date) (*domain.Stats, error)
	ToggleFunc    func(ctx context.Context, date domain.Date, plantID int) (bool, error)
	TodayFunc     func() domain.Date
	UpcomingFunc  func(ctx context.Context, from domain.Date, days int) ([]domain.UpcomingWatering, error)

	calls struct {
		ExportICS []struct {
			Ctx  context.Context
			W    io.Writer
			From domain.Date
			To   domain.Date
		}
		MonthView []struct {
			Ctx   context.Context
			Year  int
			Month time.Month
			Ref   domain.Date
		}
		Stats []struct {
			Ctx context.Context
			Ref domain.Date
		}
		Toggle []struct {
			Ctx     context.Context
			Date    domain.Date
			PlantID int
		}
		Today    []struct{}
		Upcoming []struct {
			Ctx  context.Context
			From domain.Date
			Days int
		}
	}
	lockExportICS sync.RWMutex
	lockMonthView sync.RWMutex
	lockStats     sync.RWMutex
	lockToggle    sync.RWMutex
	lockToday     sync.RWMutex
	lockUpcoming  sync.RWMutex
}

func (mock *wateringServiceMock) ExportICS(ctx context.Context, w io.Writer, from domain.Date, to domain.Date) error {
	if mock.ExportICSFunc == nil {
		panic("wateringServiceMock.ExportICSFunc: method is nil but wateringService.ExportICS was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		W    io.Writer
		From domain.Date
		To   domain.Date
	}{Ctx: ctx, W: w, From: from, To: to}
	mock.lockExportICS.Lock()
	mock.calls.ExportICS = append(mock.calls.ExportICS, callInfo)
	mock.lockExportICS.Unlock()
	return mock.ExportICSFunc(ctx, w, from, to)
}

func (mock *wateringServiceMock) ExportICSCalls() []struct {
	Ctx  context.Context
	W    io.Writer
	From domain.Date
	To   domain.Date
} {
	mock.lockExportICS.RLock()
	calls := mock.calls.ExportICS
	mock.lockExportICS.RUnlock()
	return calls
}

func (mock *wateringServiceMock) MonthView(ctx context.Context, year int, month time.Month, ref domain.Date) (*domain.MonthView, error) {
	if mock.MonthViewFunc == nil {
		panic("wateringServiceMock.MonthViewFunc: method is nil but wateringService.MonthView was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Year  int
		Month time.Month
		Ref   domain.Date
	}{Ctx: ctx, Year: year, Month: month, Ref: ref}
	mock.lockMonthView.Lock()
	mock.calls.MonthView = append(mock.calls.MonthView, callInfo)
	mock.lockMonthView.Unlock()
	return mock.MonthViewFunc(ctx, year, month, ref)
}

func (mock *wateringServiceMock) MonthViewCalls() []struct {
	Ctx   context.Context
	Year  int
	Month time.Month
	Ref   domain.Date
} {
	mock.lockMonthView.RLock()
	calls := mock.calls.MonthView
	mock.lockMonthView.RUnlock()
	return calls
}

func (mock *wateringServiceMock) Stats(ctx context.Context, ref domain.Date) (*domain.Stats, error) {
	if mock.StatsFunc == nil {
		panic("wateringServiceMock.StatsFunc: method is nil but wateringService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.Date
	}{Ctx: ctx, Ref: ref}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, ref)
}

func (mock *wateringServiceMock) StatsCalls() []struct {
	Ctx context.Context
	Ref domain.Date
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *wateringServiceMock) Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error) {
	if mock.ToggleFunc == nil {
		panic("wateringServiceMock.ToggleFunc: method is nil but wateringService.Toggle was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Date    domain.Date
		PlantID int
	}{Ctx: ctx, Date: date, PlantID: plantID}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, date, plantID)
}

func (mock *wateringServiceMock) ToggleCalls() []struct {
	Ctx     context.Context
	Date    domain.Date
	PlantID int
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}

func (mock *wateringServiceMock) Today() domain.Date {
	if mock.TodayFunc == nil {
		panic("wateringServiceMock.TodayFunc: method is nil but wateringService.Today was just called")
	}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, struct{}{})
	mock.lockToday.Unlock()
	return mock.TodayFunc()
}

func (mock *wateringServiceMock) TodayCalls() []struct{} {
	mock.lockToday.RLock()
	calls := mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}

func (mock *wateringServiceMock) Upcoming(ctx context.Context, from domain.Date, days int) ([]domain.UpcomingWatering, error) {
	if mock.UpcomingFunc == nil {
		panic("wateringServiceMock.UpcomingFunc: method is nil but wateringService.Upcoming was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From domain.Date
		Days int
	}{Ctx: ctx, From: from, Days: days}
	mock.lockUpcoming.Lock()
	mock.calls.Upcoming = append(mock.calls.Upcoming, callInfo)
	mock.lockUpcoming.Unlock()
	return mock.UpcomingFunc(ctx, from, days)
}

func (mock *wateringServiceMock) UpcomingCalls() []struct {
	Ctx  context.Context
	From domain.Date
	Days int
} {
	mock.lockUpcoming.RLock()
	calls := mock.calls.Upcoming
	mock.lockUpcoming.RUnlock()
	return calls
}
