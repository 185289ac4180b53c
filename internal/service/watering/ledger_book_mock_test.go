package watering

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/ledger"
)

var _ ledgerBook = &ledgerBookMock{}

type ledgerBookMock struct {
	SnapshotFunc func() ledger.Ledger
	ToggleFunc   func(ctx context.Context, date domain.Date, plantID int) (bool, error)

	calls struct {
		Snapshot []struct{}
		Toggle   []struct {
			Ctx     context.Context
			Date    domain.Date
			PlantID int
		}
	}
	lockSnapshot sync.RWMutex
	lockToggle   sync.RWMutex
}

func (mock *ledgerBookMock) Snapshot() ledger.Ledger {
	if mock.SnapshotFunc == nil {
		panic("ledgerBookMock.SnapshotFunc: method is nil but ledgerBook.Snapshot was just called")
	}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, struct{}{})
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc()
}

func (mock *ledgerBookMock) SnapshotCalls() []struct{} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}

func (mock *ledgerBookMock) Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error) {
	if mock.ToggleFunc == nil {
		panic("ledgerBookMock.ToggleFunc: method is nil but ledgerBook.Toggle was just called")
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

func (mock *ledgerBookMock) ToggleCalls() []struct {
	Ctx     context.Context
	Date    domain.Date
	PlantID int
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}
