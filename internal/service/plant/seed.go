package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// SeedPlants returns the collection a fresh installation starts with.
func SeedPlants() []domain.Plant {
	img := "https://images.unsplash.com/photo-1564466809057-1c2e0f5fdc8d?w=400"
	return []domain.Plant{
		{
			ID:                   1,
			ScientificName:       "Opuntia microdasys",
			CommonName:           "Tavşan Kulağı Kaktüsü",
			WateringIntervalDays: 14,
			Difficulty:           domain.DifficultyEasy,
			Tips: []string{
				"Çok az su ile sulanmalı",
				"Toprak tamamen kuruduktan sonra sulayın",
				"Kışın ayda 1 kez yeterli",
				"Dikenlerine dikkat edin",
			},
			Care: domain.Care{
				Light:       "Bol güneş ışığı",
				Temperature: "18-24°C",
				Humidity:    "Düşük nem",
				Soil:        "Kaktüs toprağı",
			},
			Image: &img,
		},
	}
}

// EnsureSeed inserts SeedPlants when the collection is empty.
func (s *Service) EnsureSeed(ctx context.Context) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.plants.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count plants: %w", err)
		}
		if n > 0 {
			return nil
		}
		for _, p := range SeedPlants() {
			if _, err := s.plants.Create(txCtx, p); err != nil {
				return fmt.Errorf("seed plant %d: %w", p.ID, err)
			}
		}
		s.log.InfoContext(ctx, "plant collection seeded", slog.Int("count", len(SeedPlants())))
		return nil
	})
}
