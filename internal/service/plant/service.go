package plant

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

type plantRepo interface {
	List(ctx context.Context, search string) ([]domain.Plant, error)
	GetByID(ctx context.Context, id int) (*domain.Plant, error)
	MaxID(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p domain.Plant) (*domain.Plant, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the plant collection. Plants are append-only.
type Service struct {
	plants plantRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new plant service.
func NewService(log *slog.Logger, plants plantRepo, tx txManager) *Service {
	return &Service{
		plants: plants,
		tx:     tx,
		log:    log.With("service", "plant"),
	}
}
