package ledger

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/storage"
)

var _ storage.SnapshotStore = &snapshotStoreMock{}

type snapshotStoreMock struct {
	LoadFunc func(ctx context.Context, name string) ([]byte, error)
	SaveFunc func(ctx context.Context, name string, blob []byte) error

	calls struct {
		Load []struct {
			Ctx  context.Context
			Name string
		}
		Save []struct {
			Ctx  context.Context
			Name string
			Blob []byte
		}
	}
	lockLoad sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *snapshotStoreMock) Load(ctx context.Context, name string) ([]byte, error) {
	if mock.LoadFunc == nil {
		panic("snapshotStoreMock.LoadFunc: method is nil but SnapshotStore.Load was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, name)
}

func (mock *snapshotStoreMock) LoadCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *snapshotStoreMock) Save(ctx context.Context, name string, blob []byte) error {
	if mock.SaveFunc == nil {
		panic("snapshotStoreMock.SaveFunc: method is nil but SnapshotStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Blob []byte
	}{Ctx: ctx, Name: name, Blob: blob}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, name, blob)
}

func (mock *snapshotStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Name string
	Blob []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
