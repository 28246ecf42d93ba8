package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// SagaManager lists sagas for operational inspection.
type SagaManager interface {
	ListSagas(ctx context.Context, page, size int) ([]models.Saga, error)
	ListSagasByStatus(ctx context.Context, status models.SagaStatus, page, size int) ([]models.Saga, error)
}

// NewSagaListHandler lists sagas.
// @Summary List sagas
// @Description Returns sagas newest first, paginated with page and size query parameters.
// @Tags sagas
// @Produce json
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size"
// @Success 200 {array} models.Saga
// @Router /sagas [get]
func NewSagaListHandler(sagas SagaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := sagas.ListSagas(r.Context(), queryInt(r, "page", 1), queryInt(r, "size", 20))
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// NewSagaListByStatusHandler lists sagas in one lifecycle status.
// @Summary List sagas by status
// @Description Returns sagas in the given lifecycle status, paginated.
// @Tags sagas
// @Produce json
// @Param status path string true "Saga status" Enums(STARTED, SOURCE_WITHDRAWN, TARGET_DEPOSITED, COMPLETED, COMPENSATING, COMPENSATED, FAILED)
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size"
// @Success 200 {array} models.Saga
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid status"
// @Router /sagas/status/{status} [get]
func NewSagaListByStatusHandler(sagas SagaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := models.SagaStatus(chi.URLParam(r, "status"))

		list, err := sagas.ListSagasByStatus(r.Context(), status,
			queryInt(r, "page", 1), queryInt(r, "size", 20))
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
