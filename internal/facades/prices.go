package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// PriceLister reads a therapist's current prices from the database.
type PriceLister interface {
	ListCurrentByTherapist(ctx context.Context, therapistID uuid.UUID) ([]models.PriceDB, error)
}

// PricesCacheFacade is a read-through Redis cache in front of the price
// repository. Cache failures fall through to the database; the listing is
// read-heavy and a short TTL keeps it fresh enough for checkout pages.
type PricesCacheFacade struct {
	rdb    *redis.Client
	prices PriceLister
	ttl    time.Duration
}

// NewPricesCacheFacade creates a new facade over the Redis client and repository.
func NewPricesCacheFacade(rdb *redis.Client, prices PriceLister, ttl time.Duration) *PricesCacheFacade {
	return &PricesCacheFacade{rdb: rdb, prices: prices, ttl: ttl}
}

func cacheKey(therapistID uuid.UUID) string {
	return fmt.Sprintf("prices:current:%s", therapistID)
}

// ListCurrentByTherapist returns the therapist's CURRENT prices, served from
// cache when possible.
func (f *PricesCacheFacade) ListCurrentByTherapist(ctx context.Context, therapistID uuid.UUID) ([]models.PriceDB, error) {
	key := cacheKey(therapistID)

	if f.rdb != nil {
		cached, err := f.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var prices []models.PriceDB
			if err := json.Unmarshal(cached, &prices); err == nil {
				return prices, nil
			}
			logger.Log.Warnw("failed to decode cached prices", "key", key, "error", err)
		} else if err != redis.Nil {
			logger.Log.Warnw("failed to read prices cache", "key", key, "error", err)
		}
	}

	prices, err := f.prices.ListCurrentByTherapist(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	if f.rdb != nil {
		if data, err := json.Marshal(prices); err == nil {
			if err := f.rdb.Set(ctx, key, data, f.ttl).Err(); err != nil {
				logger.Log.Warnw("failed to cache prices", "key", key, "error", err)
			}
		}
	}

	return prices, nil
}
