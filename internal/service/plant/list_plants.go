package plant

import (
	"context"
	"fmt"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// ListPlants returns the collection ordered by id. A non-empty query keeps
// plants whose common or scientific name contains it, ignoring case.
func (s *Service) ListPlants(ctx context.Context, query string) ([]domain.Plant, error) {
	plants, err := s.plants.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// GetPlant returns a plant by id. Returns domain.ErrNotFound if absent.
func (s *Service) GetPlant(ctx context.Context, id int) (*domain.Plant, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	p, err := s.plants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return p, nil
}
