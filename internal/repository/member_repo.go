package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"duoscale/internal/domain"
)

// MemberRepository resolves the household's two person slots to display names.
type MemberRepository interface {
	ListByHousehold(ctx context.Context, householdID string) ([]domain.HouseholdMember, error)
}

type PgMemberRepository struct {
	pool *pgxpool.Pool
}

func NewPgMemberRepository(pool *pgxpool.Pool) *PgMemberRepository {
	return &PgMemberRepository{pool: pool}
}

func (r *PgMemberRepository) ListByHousehold(ctx context.Context, householdID string) ([]domain.HouseholdMember, error) {
	const query = `
		SELECT person, display_name
		FROM household_members
		WHERE household_id = $1
		ORDER BY person ASC
	`

	rows, err := r.pool.Query(ctx, query, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.HouseholdMember
	for rows.Next() {
		var m domain.HouseholdMember
		if err := rows.Scan(&m.Person, &m.DisplayName); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}
