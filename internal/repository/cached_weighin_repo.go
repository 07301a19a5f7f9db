package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"duoscale/internal/domain"
)

var _ WeighInRepository = (*CachedWeighInRepository)(nil)

const weighInCacheTTL = 30 * time.Minute

// CachedWeighInRepository caches the full household list in Redis and
// invalidates it on every upsert. Cache trouble is logged and degrades to
// the underlying store, never to an error.
type CachedWeighInRepository struct {
	next   WeighInRepository
	cache  *redis.Client
	logger *zap.Logger
}

func NewCachedWeighInRepository(next WeighInRepository, cache *redis.Client, logger *zap.Logger) *CachedWeighInRepository {
	return &CachedWeighInRepository{next: next, cache: cache, logger: logger}
}

func (r *CachedWeighInRepository) cacheKey(householdID string) string {
	return fmt.Sprintf("weighins:%s", householdID)
}

func (r *CachedWeighInRepository) ListByHousehold(ctx context.Context, householdID string) ([]domain.WeighIn, error) {
	key := r.cacheKey(householdID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var records []domain.WeighIn
		if err := json.Unmarshal([]byte(val), &records); err == nil {
			return records, nil
		}
		r.logger.Warn("corrupted cache entry, dropping", zap.String("key", key))
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed", zap.Error(err))
	}

	records, err := r.next.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if setErr := r.cache.Set(ctx, key, data, weighInCacheTTL).Err(); setErr != nil {
			r.logger.Warn("cache write failed", zap.Error(setErr))
		}
	}
	return records, nil
}

// ListByDateRange hits the store directly; only the full list is cached.
func (r *CachedWeighInRepository) ListByDateRange(ctx context.Context, householdID, start, end string) ([]domain.WeighIn, error) {
	return r.next.ListByDateRange(ctx, householdID, start, end)
}

func (r *CachedWeighInRepository) Upsert(ctx context.Context, householdID string, record domain.WeighIn) error {
	if err := r.next.Upsert(ctx, householdID, record); err != nil {
		return err
	}
	if err := r.cache.Del(ctx, r.cacheKey(householdID)).Err(); err != nil {
		r.logger.Warn("cache invalidation failed", zap.String("household_id", householdID), zap.Error(err))
	}
	return nil
}
