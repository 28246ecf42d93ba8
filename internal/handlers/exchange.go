package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
	"github.com/sbilibin2017/gw-exchange-saga/internal/services"
)

// Exchanger starts exchanges and answers status lookups.
type Exchanger interface {
	Exchange(ctx context.Context, req services.ExchangeRequest) (*models.ExchangeTransaction, error)
	GetExchangeStatus(ctx context.Context, clientRequestID string) (*models.ExchangeTransaction, error)
	GetExchangeHistory(ctx context.Context, accountID uuid.UUID, page, size int) ([]models.ExchangeTransaction, error)
}

// ExchangeRequest represents the JSON body for starting a currency exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Caller-supplied idempotency key
	// required: true
	ClientRequestID string `json:"client_request_id"`

	// Account owning both currency balances
	// required: true
	AccountID uuid.UUID `json:"account_id"`

	// Source currency
	// required: true
	// default: USD
	SourceCurrency string `json:"source_currency"`

	// Target currency
	// required: true
	// default: KRW
	TargetCurrency string `json:"target_currency"`

	// Amount to exchange, in the source currency
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeErrorResponse represents an error response
// swagger:model ExchangeErrorResponse
type ExchangeErrorResponse struct {
	// Error message
	// default: source and target currencies must differ
	Error string `json:"error"`
}

// NewExchangeHandler starts a currency exchange.
// @Summary Start a currency exchange
// @Description Starts an asynchronous exchange saga and returns the PENDING ledger entry. Repeating a client_request_id returns the originally recorded entry without starting a second exchange.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.ExchangeRequest true "Exchange Request"
// @Success 202 {object} models.ExchangeTransaction "Exchange accepted"
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid request"
// @Failure 503 {object} handlers.ExchangeErrorResponse "Rate service unavailable"
// @Router /exchange [post]
func NewExchangeHandler(exchanger Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ClientRequestID == "" {
			writeError(w, http.StatusBadRequest, "client_request_id is required")
			return
		}
		if req.AccountID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "account_id is required")
			return
		}

		txn, err := exchanger.Exchange(r.Context(), services.ExchangeRequest{
			ClientRequestID: req.ClientRequestID,
			AccountID:       req.AccountID,
			SourceCurrency:  models.Currency(req.SourceCurrency),
			TargetCurrency:  models.Currency(req.TargetCurrency),
			Amount:          req.Amount,
		})
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, txn)
	}
}

// NewExchangeStatusHandler returns the ledger entry for a client request id.
// @Summary Get exchange status
// @Description Returns the ledger entry recorded for the given client request id.
// @Tags exchange
// @Produce json
// @Param clientRequestID path string true "Client request id"
// @Success 200 {object} models.ExchangeTransaction
// @Failure 404 {object} handlers.ExchangeErrorResponse "Exchange not found"
// @Router /exchange/{clientRequestID} [get]
func NewExchangeStatusHandler(exchanger Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientRequestID := chi.URLParam(r, "clientRequestID")

		txn, err := exchanger.GetExchangeStatus(r.Context(), clientRequestID)
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}

// NewExchangeHistoryHandler returns an account's exchange history.
// @Summary Get exchange history
// @Description Returns the account's exchanges, newest first, paginated with page and size query parameters.
// @Tags exchange
// @Produce json
// @Param accountID path string true "Account id"
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size"
// @Success 200 {array} models.ExchangeTransaction
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid account id"
// @Router /exchange/history/{accountID} [get]
func NewExchangeHistoryHandler(exchanger Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid account id")
			return
		}

		page := queryInt(r, "page", 1)
		size := queryInt(r, "size", 20)

		history, err := exchanger.GetExchangeHistory(r.Context(), accountID, page, size)
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

func writeExchangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSameCurrency),
		errors.Is(err, services.ErrUnsupportedCurrency),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidSagaStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrExchangeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRateUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ExchangeErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
