package repository

import (
	"context"
	"sort"
	"sync"

	"duoscale/internal/domain"
)

// In-memory implementations backing tests and the CLI demo mode.

type InMemoryWeighInRepository struct {
	mu    sync.RWMutex
	store map[string][]domain.WeighIn
}

func NewInMemoryWeighInRepository() *InMemoryWeighInRepository {
	return &InMemoryWeighInRepository{store: make(map[string][]domain.WeighIn)}
}

func (r *InMemoryWeighInRepository) ListByHousehold(ctx context.Context, householdID string) ([]domain.WeighIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.WeighIn, len(r.store[householdID]))
	copy(records, r.store[householdID])
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (r *InMemoryWeighInRepository) ListByDateRange(ctx context.Context, householdID, start, end string) ([]domain.WeighIn, error) {
	all, err := r.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	var records []domain.WeighIn
	for _, rec := range all {
		if rec.Date >= start && rec.Date <= end {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *InMemoryWeighInRepository) Upsert(ctx context.Context, householdID string, record domain.WeighIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store[householdID]
	for i, rec := range records {
		if rec.Person == record.Person && rec.Date == record.Date {
			records[i] = record
			return nil
		}
	}
	r.store[householdID] = append(records, record)
	return nil
}

type InMemoryMemberRepository struct {
	mu    sync.RWMutex
	store map[string][]domain.HouseholdMember
}

func NewInMemoryMemberRepository() *InMemoryMemberRepository {
	return &InMemoryMemberRepository{store: make(map[string][]domain.HouseholdMember)}
}

func (r *InMemoryMemberRepository) ListByHousehold(ctx context.Context, householdID string) ([]domain.HouseholdMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]domain.HouseholdMember, len(r.store[householdID]))
	copy(members, r.store[householdID])
	return members, nil
}

func (r *InMemoryMemberRepository) Put(householdID string, members ...domain.HouseholdMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[householdID] = append(r.store[householdID], members...)
}

type InMemoryProfileRepository struct {
	mu    sync.RWMutex
	store map[string]domain.Profile
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{store: make(map[string]domain.Profile)}
}

func profileKey(householdID string, person domain.Person) string {
	return householdID + "|" + string(person)
}

func (r *InMemoryProfileRepository) Get(ctx context.Context, householdID string, person domain.Person) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.store[profileKey(householdID, person)]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return profile, nil
}

func (r *InMemoryProfileRepository) Upsert(ctx context.Context, householdID string, profile domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[profileKey(householdID, profile.Person)] = profile
	return nil
}
