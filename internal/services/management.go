package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// ErrInvalidSagaStatus is returned for a status outside the saga lifecycle.
var ErrInvalidSagaStatus = errors.New("invalid saga status")

var sagaStatuses = map[models.SagaStatus]struct{}{
	models.SagaStarted:         {},
	models.SagaSourceWithdrawn: {},
	models.SagaTargetDeposited: {},
	models.SagaCompleted:       {},
	models.SagaCompensating:    {},
	models.SagaCompensated:     {},
	models.SagaFailed:          {},
}

// SagaLister defines the saga listing operations used for operational
// inspection.
type SagaLister interface {
	List(ctx context.Context, limit, offset int) ([]models.Saga, error)
	ListByStatus(ctx context.Context, status models.SagaStatus, limit, offset int) ([]models.Saga, error)
}

// SagaManagementService exposes read-only saga listings for operators,
// mainly to find sagas stuck in COMPENSATING or parked in FAILED.
type SagaManagementService struct {
	sagas SagaLister
}

func NewSagaManagementService(sagas SagaLister) *SagaManagementService {
	return &SagaManagementService{sagas: sagas}
}

// ListSagas returns sagas newest first, paginated.
func (svc *SagaManagementService) ListSagas(ctx context.Context, page, size int) ([]models.Saga, error) {
	limit, offset := pageToRange(page, size)
	return svc.sagas.List(ctx, limit, offset)
}

// ListSagasByStatus returns sagas in one lifecycle status, paginated.
func (svc *SagaManagementService) ListSagasByStatus(ctx context.Context, status models.SagaStatus, page, size int) ([]models.Saga, error) {
	if _, ok := sagaStatuses[status]; !ok {
		return nil, ErrInvalidSagaStatus
	}
	limit, offset := pageToRange(page, size)
	return svc.sagas.ListByStatus(ctx, status, limit, offset)
}

func pageToRange(page, size int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return size, (page - 1) * size
}
