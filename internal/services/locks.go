package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
)

const sagaLockKeyPrefix = "exchange:saga:lock:"

// SagaLockService grants short-lived per-saga execution leases backed by
// Redis, so a sweeper re-submission and an in-flight worker never drive the
// same saga concurrently. The lease expires on its own if the holder dies.
type SagaLockService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSagaLockService(client *redis.Client, ttl time.Duration) *SagaLockService {
	return &SagaLockService{client: client, ttl: ttl}
}

// Acquire attempts to take the lease for sagaID. It returns false when
// another executor already holds it.
func (s *SagaLockService) Acquire(ctx context.Context, sagaID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, sagaLockKeyPrefix+sagaID, "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring saga lock: %w", err)
	}
	return ok, nil
}

// Release frees the lease. Failure to release is logged and swallowed; the
// TTL bounds how long a stale lease can block the saga.
func (s *SagaLockService) Release(ctx context.Context, sagaID string) {
	if err := s.client.Del(ctx, sagaLockKeyPrefix+sagaID).Err(); err != nil {
		logger.Log.Warnw("failed to release saga lock", "saga_id", sagaID, "error", err)
	}
}
