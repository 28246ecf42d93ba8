package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	err      error
	done     chan struct{}
}

func (e *fakeExecutor) ExecuteSaga(ctx context.Context, sagaID string) error {
	e.mu.Lock()
	e.executed = append(e.executed, sagaID)
	e.mu.Unlock()
	if e.done != nil {
		e.done <- struct{}{}
	}
	return e.err
}

func (e *fakeExecutor) executedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.executed...)
}

type fakeLister struct {
	sagas []models.Saga
	err   error
}

func (l *fakeLister) ListStale(ctx context.Context, statuses []models.SagaStatus, threshold time.Time) ([]models.Saga, error) {
	return l.sagas, l.err
}

type fakeRetryWriter struct {
	mu      sync.Mutex
	updated []models.Saga
	err     error
}

func (w *fakeRetryWriter) Update(ctx context.Context, saga *models.Saga) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updated = append(w.updated, *saga)
	return w.err
}

type fakeCompensator struct {
	mu      sync.Mutex
	calls   map[string]string
	err     error
}

func (c *fakeCompensator) ForceCompensate(ctx context.Context, sagaID, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]string{}
	}
	c.calls[sagaID] = reason
	return c.err
}

type fakeSubmitter struct {
	mu        sync.Mutex
	submitted []string
}

func (s *fakeSubmitter) Submit(sagaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = append(s.submitted, sagaID)
}

func staleSaga(retryCount int) models.Saga {
	saga := models.NewSaga(
		uuid.New(), models.USD, models.KRW,
		decimal.NewFromInt(100), decimal.NewFromInt(138550), decimal.NewFromFloat(1385.5),
	)
	saga.RetryCount = retryCount
	saga.CreatedAt = time.Now().Add(-10 * time.Minute)
	return *saga
}

func TestSagaWorkerPool_ExecutesSubmissions(t *testing.T) {
	executor := &fakeExecutor{done: make(chan struct{}, 3)}
	pool := NewSagaWorkerPool(executor, 2, 10)

	ctx, cancel := context.WithCancel(context.Background())
	poolDone := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(poolDone)
	}()

	pool.Submit("saga-1")
	pool.Submit("saga-2")
	pool.Submit("saga-3")

	for i := 0; i < 3; i++ {
		select {
		case <-executor.done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for saga execution")
		}
	}

	cancel()
	select {
	case <-poolDone:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop on context cancel")
	}

	assert.ElementsMatch(t, []string{"saga-1", "saga-2", "saga-3"}, executor.executedIDs())
}

func TestSagaWorkerPool_ExecutionErrorDoesNotStopWorkers(t *testing.T) {
	executor := &fakeExecutor{err: errors.New("boom"), done: make(chan struct{}, 2)}
	pool := NewSagaWorkerPool(executor, 1, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pool.Run(ctx)

	pool.Submit("saga-1")
	pool.Submit("saga-2")

	for i := 0; i < 2; i++ {
		select {
		case <-executor.done:
		case <-time.After(time.Second):
			t.Fatal("worker stopped after an execution error")
		}
	}
}

func TestSagaWorkerPool_FullQueueDropsSubmission(t *testing.T) {
	pool := NewSagaWorkerPool(&fakeExecutor{}, 1, 1)

	// no workers running: the first submission fills the queue
	pool.Submit("saga-1")
	assert.NotPanics(t, func() { pool.Submit("saga-2") })
}

func TestRecoverySweeper_ResubmitsStaleSagaWithinBudget(t *testing.T) {
	saga := staleSaga(1)

	writer := &fakeRetryWriter{}
	compensator := &fakeCompensator{}
	pool := &fakeSubmitter{}
	sweeper := NewRecoverySweeper(&fakeLister{sagas: []models.Saga{saga}}, writer, compensator, pool)

	sweeper.sweep(context.Background())

	assert.Equal(t, []string{saga.SagaID}, pool.submitted)
	assert.Len(t, writer.updated, 1)
	assert.Equal(t, 2, writer.updated[0].RetryCount)
	assert.NotNil(t, writer.updated[0].LastRetryAt)
	assert.Empty(t, compensator.calls)
}

func TestRecoverySweeper_ForcesCompensationAtRetryLimit(t *testing.T) {
	saga := staleSaga(models.MaxSagaRetries)

	writer := &fakeRetryWriter{}
	compensator := &fakeCompensator{}
	pool := &fakeSubmitter{}
	sweeper := NewRecoverySweeper(&fakeLister{sagas: []models.Saga{saga}}, writer, compensator, pool)

	sweeper.sweep(context.Background())

	assert.Equal(t, "exceeded retry limit", compensator.calls[saga.SagaID])
	assert.Empty(t, pool.submitted, "an exhausted saga must not be re-driven forward")
	assert.Empty(t, writer.updated)
}

func TestRecoverySweeper_UpdateFailureSkipsSubmission(t *testing.T) {
	saga := staleSaga(0)

	writer := &fakeRetryWriter{err: errors.New("db down")}
	pool := &fakeSubmitter{}
	sweeper := NewRecoverySweeper(&fakeLister{sagas: []models.Saga{saga}}, writer, &fakeCompensator{}, pool)

	sweeper.sweep(context.Background())

	assert.Empty(t, pool.submitted, "unpersisted retry must not be submitted")
}

func TestRecoverySweeper_ListFailureIsNonFatal(t *testing.T) {
	sweeper := NewRecoverySweeper(
		&fakeLister{err: errors.New("db down")},
		&fakeRetryWriter{}, &fakeCompensator{}, &fakeSubmitter{})

	assert.NotPanics(t, func() { sweeper.sweep(context.Background()) })
}

func TestRecoverySweeper_RunStopsOnCancel(t *testing.T) {
	sweeper := NewRecoverySweeper(&fakeLister{}, &fakeRetryWriter{}, &fakeCompensator{}, &fakeSubmitter{})
	sweeper.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}
