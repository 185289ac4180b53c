package watering

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

var _ plantSource = &plantSourceMock{}

type plantSourceMock struct {
	GetPlantFunc   func(ctx context.Context, id int) (*domain.Plant, error)
	ListPlantsFunc func(ctx context.Context, query string) ([]domain.Plant, error)

	calls struct {
		GetPlant []struct {
			Ctx context.Context
			ID  int
		}
		ListPlants []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockGetPlant   sync.RWMutex
	lockListPlants sync.RWMutex
}

func (mock *plantSourceMock) GetPlant(ctx context.Context, id int) (*domain.Plant, error) {
	if mock.GetPlantFunc == nil {
		panic("plantSourceMock.GetPlantFunc: method is nil but plantSource.GetPlant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int
	}{Ctx: ctx, ID: id}
	mock.lockGetPlant.Lock()
	mock.calls.GetPlant = append(mock.calls.GetPlant, callInfo)
	mock.lockGetPlant.Unlock()
	return mock.GetPlantFunc(ctx, id)
}

func (mock *plantSourceMock) GetPlantCalls() []struct {
	Ctx context.Context
	ID  int
} {
	mock.lockGetPlant.RLock()
	calls := mock.calls.GetPlant
	mock.lockGetPlant.RUnlock()
	return calls
}

func (mock *plantSourceMock) ListPlants(ctx context.Context, query string) ([]domain.Plant, error) {
	if mock.ListPlantsFunc == nil {
		panic("plantSourceMock.ListPlantsFunc: method is nil but plantSource.ListPlants was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockListPlants.Lock()
	mock.calls.ListPlants = append(mock.calls.ListPlants, callInfo)
	mock.lockListPlants.Unlock()
	return mock.ListPlantsFunc(ctx, query)
}

func (mock *plantSourceMock) ListPlantsCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockListPlants.RLock()
	calls := mock.calls.ListPlants
	mock.lockListPlants.RUnlock()
	return calls
}
