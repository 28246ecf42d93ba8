package workers

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
)

// SagaExecutor drives one saga to a terminal state.
type SagaExecutor interface {
	ExecuteSaga(ctx context.Context, sagaID string) error
}

// SagaWorkerPool executes sagas on a fixed set of workers draining a
// buffered queue. All saga execution in the process funnels through here;
// request handlers and the recovery sweep only submit ids.
type SagaWorkerPool struct {
	executor SagaExecutor
	tasks    chan string
	workers  int
	wg       sync.WaitGroup
}

// NewSagaWorkerPool creates a pool of the given size with a buffered
// submission queue.
func NewSagaWorkerPool(executor SagaExecutor, workers, queueSize int) *SagaWorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &SagaWorkerPool{
		executor: executor,
		tasks:    make(chan string, queueSize),
		workers:  workers,
	}
}

// Submit queues a saga for execution without blocking. When the queue is
// full the submission is dropped; the recovery sweep re-drives any saga
// that consequently goes stale.
func (p *SagaWorkerPool) Submit(sagaID string) {
	select {
	case p.tasks <- sagaID:
	default:
		logger.Log.Warnw("saga queue full, dropping submission", "saga_id", sagaID)
	}
}

// Run starts the workers and blocks until the context is cancelled and all
// in-flight executions have finished.
func (p *SagaWorkerPool) Run(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.wg.Wait()
}

func (p *SagaWorkerPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case sagaID := <-p.tasks:
			if err := p.executor.ExecuteSaga(ctx, sagaID); err != nil {
				logger.Log.Errorw("saga execution failed",
					"worker", id, "saga_id", sagaID, "error", err)
			}
		}
	}
}
