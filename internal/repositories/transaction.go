package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// ExchangeWriterRepository handles ledger write operations.
type ExchangeWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExchangeWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExchangeWriterRepository {
	return &ExchangeWriterRepository{db: db, txGetter: txGetter}
}

func (r *ExchangeWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new ledger entry. The unique constraint on
// client_request_id is the backstop against two concurrent requests with
// the same idempotency key both inserting.
func (r *ExchangeWriterRepository) Save(ctx context.Context, txn *models.ExchangeTransaction) error {
	query := `
		INSERT INTO exchange_transactions (
			client_request_id, saga_id, account_id,
			source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		txn.ClientRequestID, txn.SagaID, txn.AccountID,
		txn.SourceCurrency, txn.TargetCurrency,
		txn.SourceAmount, txn.TargetAmount, txn.AppliedRate,
		txn.Status,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.ClientRequestID, txn.SagaID, txn.Status},
		"error", err,
	)

	return err
}

// UpdateStatus sets the ledger status for the entry referencing the given
// saga. completed_at is stamped only for terminal statuses.
func (r *ExchangeWriterRepository) UpdateStatus(ctx context.Context, sagaID string, status models.ExchangeStatus, failureReason *string) error {
	query := `
		UPDATE exchange_transactions
		SET status = $2,
			failure_reason = $3,
			completed_at = CASE WHEN $2 IN ('COMPLETED', 'FAILED', 'COMPENSATED') THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE saga_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, sagaID, status, failureReason)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sagaID, status},
		"error", err,
	)

	return err
}

// ExchangeReaderRepository handles ledger read operations.
type ExchangeReaderRepository struct {
	db *sqlx.DB
}

func NewExchangeReaderRepository(db *sqlx.DB) *ExchangeReaderRepository {
	return &ExchangeReaderRepository{db: db}
}

const exchangeColumns = `
	client_request_id, saga_id, account_id,
	source_currency, target_currency,
	source_amount, target_amount, applied_rate,
	status, failure_reason, completed_at, created_at, updated_at
`

// GetByClientRequestID retrieves the ledger entry for the caller's
// idempotency key.
func (r *ExchangeReaderRepository) GetByClientRequestID(ctx context.Context, clientRequestID string) (*models.ExchangeTransaction, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM exchange_transactions
		WHERE client_request_id = $1
	`

	var txn models.ExchangeTransaction
	err := r.db.GetContext(ctx, &txn, query, clientRequestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientRequestID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetBySagaID retrieves the ledger entry referencing the given saga.
func (r *ExchangeReaderRepository) GetBySagaID(ctx context.Context, sagaID string) (*models.ExchangeTransaction, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM exchange_transactions
		WHERE saga_id = $1
	`

	var txn models.ExchangeTransaction
	err := r.db.GetContext(ctx, &txn, query, sagaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sagaID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByAccount returns the exchange history of an account, newest first,
// paginated.
func (r *ExchangeReaderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.ExchangeTransaction, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM exchange_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var txns []models.ExchangeTransaction
	err := r.db.SelectContext(ctx, &txns, query, accountID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, limit, offset},
		"result_count", len(txns),
		"error", err,
	)

	return txns, err
}
