package plant

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	CountFunc   func(ctx context.Context) (int, error)
	CreateFunc  func(ctx context.Context, p domain.Plant) (*domain.Plant, error)
	GetByIDFunc func(ctx context.Context, id int) (*domain.Plant, error)
	ListFunc    func(ctx context.Context, search string) ([]domain.Plant, error)
	MaxIDFunc   func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			P   domain.Plant
		}
		GetByID []struct {
			Ctx context.Context
			ID  int
		}
		List []struct {
			Ctx    context.Context
			Search string
		}
		MaxID []struct {
			Ctx context.Context
		}
	}
	lockCount   sync.RWMutex
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockMaxID   sync.RWMutex
}

func (mock *plantRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("plantRepoMock.CountFunc: method is nil but plantRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *plantRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *plantRepoMock) Create(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("plantRepoMock.CreateFunc: method is nil but plantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Plant
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *plantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Plant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *plantRepoMock) GetByID(ctx context.Context, id int) (*domain.Plant, error) {
	if mock.GetByIDFunc == nil {
		panic("plantRepoMock.GetByIDFunc: method is nil but plantRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *plantRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *plantRepoMock) List(ctx context.Context, search string) ([]domain.Plant, error) {
	if mock.ListFunc == nil {
		panic("plantRepoMock.ListFunc: method is nil but plantRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Search string
	}{Ctx: ctx, Search: search}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, search)
}

func (mock *plantRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Search string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *plantRepoMock) MaxID(ctx context.Context) (int, error) {
	if mock.MaxIDFunc == nil {
		panic("plantRepoMock.MaxIDFunc: method is nil but plantRepo.MaxID was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMaxID.Lock()
	mock.calls.MaxID = append(mock.calls.MaxID, callInfo)
	mock.lockMaxID.Unlock()
	return mock.MaxIDFunc(ctx)
}

func (mock *plantRepoMock) MaxIDCalls() []struct {
	Ctx context.Context
} {
	mock.lockMaxID.RLock()
	calls := mock.calls.MaxID
	mock.lockMaxID.RUnlock()
	return calls
}
