package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"duoscale/internal/domain"
)

// WeighInRepository is the data-access contract for the weigh-in store. This
// core reads series and accepts upserts keyed by (person, date); the store
// enforces at most one record per key.
type WeighInRepository interface {
	ListByHousehold(ctx context.Context, householdID string) ([]domain.WeighIn, error)
	ListByDateRange(ctx context.Context, householdID, start, end string) ([]domain.WeighIn, error)
	Upsert(ctx context.Context, householdID string, record domain.WeighIn) error
}

type PgWeighInRepository struct {
	pool *pgxpool.Pool
}

func NewPgWeighInRepository(pool *pgxpool.Pool) *PgWeighInRepository {
	return &PgWeighInRepository{pool: pool}
}

func (r *PgWeighInRepository) ListByHousehold(ctx context.Context, householdID string) ([]domain.WeighIn, error) {
	const query = `
		SELECT date::text, person, weight_kg, drank
		FROM weigh_ins
		WHERE household_id = $1
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWeighIns(rows)
}

func (r *PgWeighInRepository) ListByDateRange(ctx context.Context, householdID, start, end string) ([]domain.WeighIn, error) {
	const query = `
		SELECT date::text, person, weight_kg, drank
		FROM weigh_ins
		WHERE household_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, householdID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWeighIns(rows)
}

func (r *PgWeighInRepository) Upsert(ctx context.Context, householdID string, record domain.WeighIn) error {
	const query = `
		INSERT INTO weigh_ins (household_id, person, date, weight_kg, drank)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (household_id, person, date)
		DO UPDATE SET weight_kg = EXCLUDED.weight_kg, drank = EXCLUDED.drank
	`

	_, err := r.pool.Exec(ctx, query,
		householdID,
		record.Person,
		record.Date,
		record.WeightKg,
		record.Drank,
	)
	return err
}

func scanWeighIns(rows pgx.Rows) ([]domain.WeighIn, error) {
	var records []domain.WeighIn
	for rows.Next() {
		var rec domain.WeighIn
		if err := rows.Scan(&rec.Date, &rec.Person, &rec.WeightKg, &rec.Drank); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
