package plant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// AddPlant validates input and appends a new plant with id max(existing)+1.
func (s *Service) AddPlant(ctx context.Context, input CreatePlantInput) (*domain.Plant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.Plant{
		ScientificName:       strings.TrimSpace(input.ScientificName),
		CommonName:           strings.TrimSpace(input.CommonName),
		WateringIntervalDays: input.WateringIntervalDays,
		Difficulty:           input.Difficulty,
		Tips:                 cleanTips(input.Tips),
		Care: domain.Care{
			Light:       strings.TrimSpace(input.Care.Light),
			Temperature: strings.TrimSpace(input.Care.Temperature),
			Humidity:    strings.TrimSpace(input.Care.Humidity),
			Soil:        strings.TrimSpace(input.Care.Soil),
		},
		Image: trimOrNil(input.Image),
	}

	var created *domain.Plant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		maxID, err := s.plants.MaxID(txCtx)
		if err != nil {
			return fmt.Errorf("max plant id: %w", err)
		}
		p.ID = maxID + 1

		switch _, err := s.plants.GetByID(txCtx, p.ID); {
		case err == nil:
			return &domain.DuplicatePlantIDError{ID: p.ID}
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("check plant id: %w", err)
		}

		created, err = s.plants.Create(txCtx, p)
		if err != nil {
			return fmt.Errorf("create plant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plant added",
		slog.Int("plant_id", created.ID),
		slog.String("common_name", created.CommonName),
		slog.Int("interval_days", created.WateringIntervalDays),
	)

	return created, nil
}
