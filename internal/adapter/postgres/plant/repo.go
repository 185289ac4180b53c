// Package plant implements the plant collection repository using PostgreSQL.
package plant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantwater-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

// Repo provides plant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "scientific_name", "common_name", "watering_interval_days", "difficulty",
	"tips", "care_light", "care_temperature", "care_humidity", "care_soil", "image",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns plants ordered by id. A non-empty search filters by a
// case-insensitive substring of the common or scientific name.
func (r *Repo) List(ctx context.Context, search string) ([]domain.Plant, error) {
	query := psql.Select(columns...).From("plants").OrderBy("id ASC")
	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"common_name": pattern},
			sq.ILike{"scientific_name": pattern},
		})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	plants, err := pgx.CollectRows(rows, scanPlant)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// GetByID returns a plant by id. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id int) (*domain.Plant, error) {
	sqlStr, args, err := psql.Select(columns...).From("plants").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "plant", id)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPlant)
	if err != nil {
		return nil, postgres.MapError(err, "plant", id)
	}
	return &p, nil
}

// MaxID returns the largest plant id, or 0 when the table is empty.
// Inside a transaction the table is locked against concurrent inserts until commit.
func (r *Repo) MaxID(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if postgres.InTx(ctx) {
		if _, err := q.Exec(ctx, "LOCK TABLE plants IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return 0, fmt.Errorf("lock plants: %w", err)
		}
	}

	var maxID int
	if err := q.QueryRow(ctx, "SELECT COALESCE(MAX(id), 0) FROM plants").Scan(&maxID); err != nil {
		return 0, fmt.Errorf("max plant id: %w", err)
	}
	return maxID, nil
}

// Count returns the number of plants.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, "SELECT count(*) FROM plants").Scan(&n); err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a plant with a caller-assigned id.
// A primary key collision is reported as *domain.DuplicatePlantIDError.
func (r *Repo) Create(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	tips := p.Tips
	if tips == nil {
		tips = []string{}
	}

	sqlStr, args, err := psql.Insert("plants").
		Columns(columns...).
		Values(p.ID, p.ScientificName, p.CommonName, p.WateringIntervalDays, string(p.Difficulty),
			tips, p.Care.Light, p.Care.Temperature, p.Care.Humidity, p.Care.Soil, p.Image).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, r.insertError(err, p.ID)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanPlant)
	if err != nil {
		return nil, r.insertError(err, p.ID)
	}
	return &created, nil
}

func (r *Repo) insertError(err error, id int) error {
	mapped := postgres.MapError(err, "plant", id)
	if errors.Is(mapped, domain.ErrAlreadyExists) {
		return &domain.DuplicatePlantIDError{ID: id}
	}
	return mapped
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanPlant(row pgx.CollectableRow) (domain.Plant, error) {
	var (
		p          domain.Plant
		difficulty string
	)
	err := row.Scan(
		&p.ID, &p.ScientificName, &p.CommonName, &p.WateringIntervalDays, &difficulty,
		&p.Tips, &p.Care.Light, &p.Care.Temperature, &p.Care.Humidity, &p.Care.Soil, &p.Image,
	)
	if err != nil {
		return domain.Plant{}, err
	}
	p.Difficulty = domain.Difficulty(difficulty)
	return p, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
