package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// RateCacheRepository provides cached rate quotes using Redis.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new repository instance with the given TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(source, target models.Currency) string {
	return fmt.Sprintf("exchange:rate:%s:%s", source, target)
}

// GetRate fetches a cached rate quote for a currency pair.
func (r *RateCacheRepository) GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error) {
	key := rateKey(source, target)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("rate not found in cache for %s->%s", source, target)
		}
		return nil, err
	}

	var rate models.Rate
	if err := json.Unmarshal([]byte(val), &rate); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", rate.EffectiveRate,
		"error", nil,
	)

	return &rate, nil
}

// SetRate caches a rate quote with expiration.
func (r *RateCacheRepository) SetRate(ctx context.Context, rate *models.Rate) error {
	key := rateKey(rate.SourceCurrency, rate.TargetCurrency)

	val, err := json.Marshal(rate)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate.EffectiveRate,
		"result", "ok",
		"error", err,
	)

	return err
}
