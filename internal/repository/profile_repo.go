package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"duoscale/internal/domain"
)

// ProfileRepository stores per-member goal settings.
type ProfileRepository interface {
	Get(ctx context.Context, householdID string, person domain.Person) (domain.Profile, error)
	Upsert(ctx context.Context, householdID string, profile domain.Profile) error
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Get(ctx context.Context, householdID string, person domain.Person) (domain.Profile, error) {
	const query = `
		SELECT person, goal_kg, COALESCE(diet_start_date::text, '')
		FROM user_profiles
		WHERE household_id = $1 AND person = $2
	`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, householdID, person).Scan(&p.Person, &p.GoalKg, &p.DietStartDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (r *PgProfileRepository) Upsert(ctx context.Context, householdID string, profile domain.Profile) error {
	const query = `
		INSERT INTO user_profiles (household_id, person, goal_kg, diet_start_date)
		VALUES ($1, $2, $3, NULLIF($4, '')::date)
		ON CONFLICT (household_id, person)
		DO UPDATE SET goal_kg = EXCLUDED.goal_kg, diet_start_date = EXCLUDED.diet_start_date
	`

	_, err := r.pool.Exec(ctx, query,
		householdID,
		profile.Person,
		profile.GoalKg,
		profile.DietStartDate,
	)
	return err
}
