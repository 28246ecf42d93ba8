package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
	"github.com/shopspring/decimal"
)

// Account capability failure taxonomy. Only ErrServiceUnavailable is
// retryable; the business rejections are final for a given leg.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotActive   = errors.New("account not active")
	ErrServiceUnavailable = errors.New("account service unavailable")
)

type accountLegRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        models.Currency `json:"currency"`
	ClientRequestID string          `json:"client_request_id"`
	SagaID          string          `json:"saga_id"`
}

type accountLegResponse struct {
	Data  *models.AccountTransaction `json:"data"`
	Error string                     `json:"error,omitempty"`
}

// AccountHTTPFacade calls one account service's withdraw/deposit capability
// over HTTP. Calls are idempotent on the service side, keyed by the
// client request id, so a retried call returns the originally recorded
// transaction instead of re-applying the balance change.
//
// A circuit breaker plus a bounded retry on transport-level failures sit in
// front of every call; business rejections are never retried.
type AccountHTTPFacade struct {
	name       string
	baseURL    string
	client     *http.Client
	breaker    *CircuitBreaker
	maxRetries int
}

// NewAccountHTTPFacade creates a facade for the account service at baseURL.
// maxRetries bounds additional attempts after a transport failure; 0
// restores compensate-on-first-error behavior.
func NewAccountHTTPFacade(name, baseURL string, maxRetries int) *AccountHTTPFacade {
	return &AccountHTTPFacade{
		name:       name,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		breaker:    NewCircuitBreaker(name, 5, 30*time.Second),
		maxRetries: maxRetries,
	}
}

// Withdraw removes funds from the account.
func (f *AccountHTTPFacade) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency models.Currency, idempotencyKey, sagaID string) (*models.AccountTransaction, error) {
	return f.call(ctx, "withdraw", accountID, accountLegRequest{
		Amount:          amount,
		Currency:        currency,
		ClientRequestID: idempotencyKey,
		SagaID:          sagaID,
	})
}

// Deposit adds funds to the account.
func (f *AccountHTTPFacade) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency models.Currency, idempotencyKey, sagaID string) (*models.AccountTransaction, error) {
	return f.call(ctx, "deposit", accountID, accountLegRequest{
		Amount:          amount,
		Currency:        currency,
		ClientRequestID: idempotencyKey,
		SagaID:          sagaID,
	})
}

func (f *AccountHTTPFacade) call(ctx context.Context, operation string, accountID uuid.UUID, req accountLegRequest) (*models.AccountTransaction, error) {
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
			logger.Log.Infow("retrying account call",
				"service", f.name, "operation", operation, "attempt", attempt,
				"client_request_id", req.ClientRequestID)
		}

		txn, err := f.doCall(ctx, operation, accountID, req)
		if err == nil {
			return txn, nil
		}
		lastErr = err

		// only transport-level failures are worth retrying
		if !errors.Is(err, ErrServiceUnavailable) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (f *AccountHTTPFacade) doCall(ctx context.Context, operation string, accountID uuid.UUID, req accountLegRequest) (*models.AccountTransaction, error) {
	if !f.breaker.Allow() {
		logger.Log.Warnw("account call rejected by circuit breaker",
			"service", f.name, "operation", operation, "saga_id", req.SagaID)
		return nil, fmt.Errorf("%w: %s", ErrServiceUnavailable, ErrBreakerOpen)
	}

	body, err := json.Marshal(req)
	if err != nil {
		f.breaker.Success()
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts/%s/%s", f.baseURL, accountID, operation)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		f.breaker.Success()
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		f.breaker.Failure()
		logger.Log.Errorw("account call transport failure",
			"service", f.name, "operation", operation, "saga_id", req.SagaID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var legResp accountLegResponse
	if err := json.NewDecoder(resp.Body).Decode(&legResp); err != nil {
		f.breaker.Failure()
		return nil, fmt.Errorf("%w: decoding response: %v", ErrServiceUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		f.breaker.Failure()
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		f.breaker.Success()
		return nil, ErrInsufficientFunds
	case resp.StatusCode == http.StatusConflict:
		f.breaker.Success()
		return nil, ErrAccountNotActive
	case resp.StatusCode != http.StatusOK:
		f.breaker.Success()
		return nil, fmt.Errorf("account %s failed: status %d: %s", operation, resp.StatusCode, legResp.Error)
	}

	if legResp.Data == nil {
		f.breaker.Success()
		return nil, fmt.Errorf("account %s failed: empty response", operation)
	}

	f.breaker.Success()
	logger.Log.Infow("account call completed",
		"service", f.name, "operation", operation,
		"saga_id", req.SagaID, "transaction_id", legResp.Data.TransactionID)
	return legResp.Data, nil
}
