package workers

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

const (
	defaultSweepInterval = time.Minute
	defaultStaleAfter    = 5 * time.Minute
)

// staleStatuses are the non-terminal statuses a saga can be stuck in.
// TARGET_DEPOSITED is transient within a single execution and never
// persisted as a resting state, so the sweep does not look for it.
var staleStatuses = []models.SagaStatus{
	models.SagaStarted,
	models.SagaSourceWithdrawn,
	models.SagaCompensating,
}

// StaleSagaLister lists sagas stuck in a non-terminal status.
type StaleSagaLister interface {
	ListStale(ctx context.Context, statuses []models.SagaStatus, threshold time.Time) ([]models.Saga, error)
}

// SagaRetryWriter persists the retry bookkeeping of a re-driven saga.
type SagaRetryWriter interface {
	Update(ctx context.Context, saga *models.Saga) error
}

// SagaCompensator forces a stuck saga into compensation.
type SagaCompensator interface {
	ForceCompensate(ctx context.Context, sagaID, reason string) error
}

// SagaSubmitter hands a saga id to the execution pool.
type SagaSubmitter interface {
	Submit(sagaID string)
}

// RecoverySweeper periodically re-drives sagas that have been sitting in a
// non-terminal status for too long, typically because the process crashed
// mid-execution or a submission was dropped. A saga that exhausts its
// retry budget is forced into compensation instead of being re-driven.
type RecoverySweeper struct {
	sagas       StaleSagaLister
	sagaWriter  SagaRetryWriter
	compensator SagaCompensator
	pool        SagaSubmitter
	interval    time.Duration
	staleAfter  time.Duration
}

func NewRecoverySweeper(
	sagas StaleSagaLister,
	sagaWriter SagaRetryWriter,
	compensator SagaCompensator,
	pool SagaSubmitter,
) *RecoverySweeper {
	return &RecoverySweeper{
		sagas:       sagas,
		sagaWriter:  sagaWriter,
		compensator: compensator,
		pool:        pool,
		interval:    defaultSweepInterval,
		staleAfter:  defaultStaleAfter,
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (s *RecoverySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RecoverySweeper) sweep(ctx context.Context) {
	threshold := time.Now().Add(-s.staleAfter)

	stale, err := s.sagas.ListStale(ctx, staleStatuses, threshold)
	if err != nil {
		logger.Log.Errorw("stale saga sweep failed", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	logger.Log.Infow("recovering stale sagas", "count", len(stale))

	for i := range stale {
		saga := &stale[i]

		if !saga.CanRetry() {
			logger.Log.Warnw("saga exceeded retry limit, forcing compensation",
				"saga_id", saga.SagaID, "status", saga.Status, "retry_count", saga.RetryCount)
			if err := s.compensator.ForceCompensate(ctx, saga.SagaID, "exceeded retry limit"); err != nil {
				logger.Log.Errorw("forced compensation failed",
					"saga_id", saga.SagaID, "error", err)
			}
			continue
		}

		saga.IncrementRetry()
		if err := s.sagaWriter.Update(ctx, saga); err != nil {
			logger.Log.Errorw("failed to persist saga retry",
				"saga_id", saga.SagaID, "error", err)
			continue
		}

		logger.Log.Infow("re-submitting stale saga",
			"saga_id", saga.SagaID, "status", saga.Status, "retry_count", saga.RetryCount)
		s.pool.Submit(saga.SagaID)
	}
}
