package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// UniqueName returns a snapshot record name that no other test uses.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// ResetPlants removes every plant row. Tests that depend on id assignment
// call it first and must not run in parallel with each other.
func ResetPlants(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE plants`); err != nil {
		t.Fatalf("testhelper: ResetPlants: %v", err)
	}
}

// SeedPlant inserts a plant with the given id and interval.
func SeedPlant(t *testing.T, pool *pgxpool.Pool, id, interval int, commonName string) domain.Plant {
	t.Helper()

	p := domain.Plant{
		ID:                   id,
		ScientificName:       "Testus plantus " + commonName,
		CommonName:           commonName,
		WateringIntervalDays: interval,
		Difficulty:           domain.DifficultyEasy,
		Tips:                 []string{"water at the base"},
		Care:                 domain.Care{Light: "bright", Temperature: "18-24°C", Humidity: "low", Soil: "cactus mix"},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO plants (id, scientific_name, common_name, watering_interval_days, difficulty, tips,
		                     care_light, care_temperature, care_humidity, care_soil)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.ScientificName, p.CommonName, p.WateringIntervalDays, string(p.Difficulty), p.Tips,
		p.Care.Light, p.Care.Temperature, p.Care.Humidity, p.Care.Soil,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlant %d: %v", id, err)
	}
	return p
}
