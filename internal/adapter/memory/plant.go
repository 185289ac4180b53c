// Package memory holds in-process implementations of the plant repository
// and its transaction manager, used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// PlantRepo keeps plants in a slice ordered by id.
type PlantRepo struct {
	mu     sync.RWMutex
	plants []domain.Plant
}

// NewPlantRepo creates a repository holding copies of seed.
func NewPlantRepo(seed ...domain.Plant) *PlantRepo {
	r := &PlantRepo{}
	for _, p := range seed {
		r.plants = append(r.plants, clonePlant(p))
	}
	slices.SortFunc(r.plants, func(a, b domain.Plant) int { return a.ID - b.ID })
	return r
}

// List returns plants ordered by id, filtered by a case-insensitive substring
// of the common or scientific name when search is non-empty.
func (r *PlantRepo) List(_ context.Context, search string) ([]domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.CommonName), needle) &&
			!strings.Contains(strings.ToLower(p.ScientificName), needle) {
			continue
		}
		out = append(out, clonePlant(p))
	}
	return out, nil
}

func (r *PlantRepo) GetByID(_ context.Context, id int) (*domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plants {
		if p.ID == id {
			c := clonePlant(p)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
}

func (r *PlantRepo) MaxID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.NextPlantID(r.plants) - 1, nil
}

func (r *PlantRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plants), nil
}

// Create appends a plant. An id already in use yields *domain.DuplicatePlantIDError.
func (r *PlantRepo) Create(_ context.Context, p domain.Plant) (*domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.plants {
		if existing.ID == p.ID {
			return nil, &domain.DuplicatePlantIDError{ID: p.ID}
		}
	}
	r.plants = append(r.plants, clonePlant(p))
	slices.SortFunc(r.plants, func(a, b domain.Plant) int { return a.ID - b.ID })

	c := clonePlant(p)
	return &c, nil
}

func clonePlant(p domain.Plant) domain.Plant {
	p.Tips = slices.Clone(p.Tips)
	if p.Image != nil {
		img := *p.Image
		p.Image = &img
	}
	return p
}

// TxManager serialises transactional callbacks. It gives the memory plant
// repository the same read-then-insert atomicity a database transaction would.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
