package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/service/plant"
)

var _ plantService = &plantServiceMock{}

type plantServiceMock struct {
	AddPlantFunc   func(ctx context.Context, input plant.CreatePlantInput) (*domain.Plant, error)
	GetPlantFunc   func(ctx context.Context, id int) (*domain.Plant, error)
	ListPlantsFunc func(ctx context.Context, query string) ([]domain.Plant, error)

	calls struct {
		AddPlant []struct {
			Ctx   context.Context
			Input plant.CreatePlantInput
		}
		GetPlant []struct {
			Ctx context.Context
			ID  int
		}
		ListPlants []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockAddPlant   sync.RWMutex
	lockGetPlant   sync.RWMutex
	lockListPlants sync.RWMutex
}

func (mock *plantServiceMock) AddPlant(ctx context.Context, input plant.CreatePlantInput) (*domain.Plant, error) {
	if mock.AddPlantFunc == nil {
		panic("plantServiceMock.AddPlantFunc: method is nil but plantService.AddPlant was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plant.CreatePlantInput
	}{Ctx: ctx, Input: input}
	mock.lockAddPlant.Lock()
	mock.calls.AddPlant = append(mock.calls.AddPlant, callInfo)
	mock.lockAddPlant.Unlock()
	return mock.AddPlantFunc(ctx, input)
}

func (mock *plantServiceMock) AddPlantCalls() []struct {
	Ctx   context.Context
	Input plant.CreatePlantInput
} {
	mock.lockAddPlant.RLock()
	calls := mock.calls.AddPlant
	mock.lockAddPlant.RUnlock()
	return calls
}

func (mock *plantServiceMock) GetPlant(ctx context.Context, id int) (*domain.Plant, error) {
	if mock.GetPlantFunc == nil {
		panic("plantServiceMock.GetPlantFunc: method is nil but plantService.GetPlant was just called")
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

func (mock *plantServiceMock) GetPlantCalls() []struct {
	Ctx context.Context
	ID  int
} {
	mock.lockGetPlant.RLock()
	calls := mock.calls.GetPlant
	mock.lockGetPlant.RUnlock()
	return calls
}

func (mock *plantServiceMock) ListPlants(ctx context.Context, query string) ([]domain.Plant, error) {
	if mock.ListPlantsFunc == nil {
		panic("plantServiceMock.ListPlantsFunc: method is nil but plantService.ListPlants was just called")
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

func (mock *plantServiceMock) ListPlantsCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockListPlants.RLock()
	calls := mock.calls.ListPlants
	mock.lockListPlants.RUnlock()
	return calls
}
