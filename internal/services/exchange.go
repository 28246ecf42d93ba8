package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

var (
	// ErrSameCurrency is returned when source and target currencies match.
	ErrSameCurrency = errors.New("source and target currencies must differ")
	// ErrUnsupportedCurrency is returned for a currency outside the supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInvalidAmount is returned when the source amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrExchangeNotFound is returned when no ledger entry matches the lookup.
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrRateUnavailable is returned when no rate can be resolved for the pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// ExchangeReader defines ledger read operations used by services.
type ExchangeReader interface {
	GetByClientRequestID(ctx context.Context, clientRequestID string) (*models.ExchangeTransaction, error)
	GetBySagaID(ctx context.Context, sagaID string) (*models.ExchangeTransaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.ExchangeTransaction, error)
}

// ExchangeWriter defines ledger write operations used by services.
type ExchangeWriter interface {
	Save(ctx context.Context, txn *models.ExchangeTransaction) error
}

// SagaCreator creates sagas ready for execution.
type SagaCreator interface {
	CreateSaga(ctx context.Context, accountID uuid.UUID, source, target models.Currency, sourceAmount, targetAmount, appliedRate decimal.Decimal) (*models.Saga, error)
}

// SagaSubmitter hands a saga id to the asynchronous execution pool.
type SagaSubmitter interface {
	Submit(sagaID string)
}

// RateReader resolves rate quotes from the external exchanger.
type RateReader interface {
	GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error)
}

// RateCacheReader caches rate quotes.
type RateCacheReader interface {
	GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error)
	SetRate(ctx context.Context, rate *models.Rate) error
}

// ExchangeRequest is one caller request to exchange funds.
type ExchangeRequest struct {
	ClientRequestID string
	AccountID       uuid.UUID
	SourceCurrency  models.Currency
	TargetCurrency  models.Currency
	Amount          decimal.Decimal
}

// ExchangeService is the request-facing side of the exchange flow: it
// deduplicates by client request id, freezes the rate, creates the saga
// and ledger entry, and submits execution. The caller gets the PENDING
// entry back immediately; completion is asynchronous.
type ExchangeService struct {
	reader    ExchangeReader
	writer    ExchangeWriter
	sagas     SagaCreator
	pool      SagaSubmitter
	rates     RateReader
	rateCache RateCacheReader
}

// NewExchangeService creates a new service instance.
func NewExchangeService(
	reader ExchangeReader,
	writer ExchangeWriter,
	sagas SagaCreator,
	pool SagaSubmitter,
	rates RateReader,
	rateCache RateCacheReader,
) *ExchangeService {
	return &ExchangeService{
		reader:    reader,
		writer:    writer,
		sagas:     sagas,
		pool:      pool,
		rates:     rates,
		rateCache: rateCache,
	}
}

// Exchange starts a currency exchange, or returns the already-recorded
// entry when the client request id has been seen before. A repeated call
// never starts a second saga and never re-resolves the rate.
func (svc *ExchangeService) Exchange(ctx context.Context, req ExchangeRequest) (*models.ExchangeTransaction, error) {
	existing, err := svc.reader.GetByClientRequestID(ctx, req.ClientRequestID)
	if err == nil {
		logger.Log.Infow("duplicate exchange request, returning recorded entry",
			"client_request_id", req.ClientRequestID, "saga_id", existing.SagaID,
			"status", existing.Status)
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("looking up client request: %w", err)
	}

	if err := validateExchangeRequest(req); err != nil {
		return nil, err
	}

	rate, err := svc.lookupRate(ctx, req.SourceCurrency, req.TargetCurrency)
	if err != nil {
		return nil, err
	}
	targetAmount := rate.TargetAmount(req.Amount)

	saga, err := svc.sagas.CreateSaga(ctx,
		req.AccountID, req.SourceCurrency, req.TargetCurrency,
		req.Amount, targetAmount, rate.EffectiveRate)
	if err != nil {
		return nil, err
	}

	txn := models.NewExchangeTransaction(req.ClientRequestID, saga)
	if err := svc.writer.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("saving ledger entry: %w", err)
	}

	svc.pool.Submit(saga.SagaID)

	logger.Log.Infow("exchange accepted",
		"client_request_id", req.ClientRequestID, "saga_id", saga.SagaID,
		"source_amount", req.Amount, "target_amount", targetAmount,
		"applied_rate", rate.EffectiveRate)
	return txn, nil
}

func validateExchangeRequest(req ExchangeRequest) error {
	if !req.SourceCurrency.IsValid() || !req.TargetCurrency.IsValid() {
		return ErrUnsupportedCurrency
	}
	if req.SourceCurrency == req.TargetCurrency {
		return ErrSameCurrency
	}
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// GetExchangeStatus returns the ledger entry for a client request id.
func (svc *ExchangeService) GetExchangeStatus(ctx context.Context, clientRequestID string) (*models.ExchangeTransaction, error) {
	txn, err := svc.reader.GetByClientRequestID(ctx, clientRequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExchangeNotFound
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// GetExchangeBySagaID returns the ledger entry referencing a saga.
func (svc *ExchangeService) GetExchangeBySagaID(ctx context.Context, sagaID string) (*models.ExchangeTransaction, error) {
	txn, err := svc.reader.GetBySagaID(ctx, sagaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExchangeNotFound
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// GetExchangeHistory returns an account's exchanges, newest first.
func (svc *ExchangeService) GetExchangeHistory(ctx context.Context, accountID uuid.UUID, page, size int) ([]models.ExchangeTransaction, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return svc.reader.ListByAccount(ctx, accountID, size, (page-1)*size)
}

// GetRate returns the current quote for a pair, cache first.
func (svc *ExchangeService) GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error) {
	if !source.IsValid() || !target.IsValid() {
		return nil, ErrUnsupportedCurrency
	}
	if source == target {
		return nil, ErrSameCurrency
	}
	return svc.lookupRate(ctx, source, target)
}

// CompareRates ranks candidate target currencies by how much a fixed
// source amount would yield, best first. Pairs whose rate cannot be
// resolved are skipped rather than failing the whole comparison.
func (svc *ExchangeService) CompareRates(ctx context.Context, source models.Currency, amount decimal.Decimal, targets []models.Currency) ([]models.RateComparison, error) {
	if !source.IsValid() {
		return nil, ErrUnsupportedCurrency
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	comparisons := make([]models.RateComparison, 0, len(targets))
	for _, target := range targets {
		if !target.IsValid() || target == source {
			continue
		}

		rate, err := svc.lookupRate(ctx, source, target)
		if err != nil {
			logger.Log.Warnw("skipping pair in rate comparison",
				"source", source, "target", target, "error", err)
			continue
		}

		comparisons = append(comparisons, models.RateComparison{
			TargetCurrency: target,
			Rate:           rate.Rate,
			EffectiveRate:  rate.EffectiveRate,
			TargetAmount:   rate.TargetAmount(amount),
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].TargetAmount.GreaterThan(comparisons[j].TargetAmount)
	})
	return comparisons, nil
}

func (svc *ExchangeService) lookupRate(ctx context.Context, source, target models.Currency) (*models.Rate, error) {
	rate, err := svc.rateCache.GetRate(ctx, source, target)
	if err == nil {
		return rate, nil
	}

	rate, err = svc.rates.GetRate(ctx, source, target)
	if err != nil {
		logger.Log.Errorw("failed to resolve exchange rate",
			"source", source, "target", target, "error", err)
		return nil, fmt.Errorf("%w: %s/%s", ErrRateUnavailable, source, target)
	}

	if err := svc.rateCache.SetRate(ctx, rate); err != nil {
		logger.Log.Warnw("failed to cache exchange rate",
			"source", source, "target", target, "error", err)
	}
	return rate, nil
}
