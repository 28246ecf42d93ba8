package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// SagaWriterRepository handles saga write operations.
type SagaWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSagaWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SagaWriterRepository {
	return &SagaWriterRepository{db: db, txGetter: txGetter}
}

func (r *SagaWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a freshly created saga row.
func (r *SagaWriterRepository) Save(ctx context.Context, saga *models.Saga) error {
	query := `
		INSERT INTO exchange_sagas (
			saga_id, account_id, source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, current_step, retry_count, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		saga.SagaID, saga.AccountID, saga.SourceCurrency, saga.TargetCurrency,
		saga.SourceAmount, saga.TargetAmount, saga.AppliedRate,
		saga.Status, saga.CurrentStep, saga.RetryCount,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{saga.SagaID, saga.Status, saga.CurrentStep},
		"error", err,
	)

	return err
}

// Update persists every mutable saga field. Sagas are never deleted; they
// are retained for audit.
func (r *SagaWriterRepository) Update(ctx context.Context, saga *models.Saga) error {
	query := `
		UPDATE exchange_sagas
		SET status = $2,
			current_step = $3,
			source_withdraw_tx_id = $4,
			target_deposit_tx_id = $5,
			failure_reason = $6,
			retry_count = $7,
			last_retry_at = $8,
			completed_at = $9,
			updated_at = NOW()
		WHERE saga_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		saga.SagaID, saga.Status, saga.CurrentStep,
		saga.SourceWithdrawTxID, saga.TargetDepositTxID, saga.FailureReason,
		saga.RetryCount, saga.LastRetryAt, saga.CompletedAt,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{saga.SagaID, saga.Status, saga.CurrentStep},
		"error", err,
	)

	return err
}

// SagaReaderRepository handles saga read operations.
type SagaReaderRepository struct {
	db *sqlx.DB
}

func NewSagaReaderRepository(db *sqlx.DB) *SagaReaderRepository {
	return &SagaReaderRepository{db: db}
}

// GetBySagaID retrieves a saga by its globally unique id.
func (r *SagaReaderRepository) GetBySagaID(ctx context.Context, sagaID string) (*models.Saga, error) {
	const query = `
		SELECT saga_id, account_id, source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, current_step, source_withdraw_tx_id, target_deposit_tx_id,
			failure_reason, retry_count, last_retry_at, completed_at,
			created_at, updated_at
		FROM exchange_sagas
		WHERE saga_id = $1
	`

	var saga models.Saga
	err := r.db.GetContext(ctx, &saga, query, sagaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sagaID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saga, nil
}

// ListStale returns sagas in one of the given statuses created before the
// threshold, oldest first. Used by the recovery sweep.
func (r *SagaReaderRepository) ListStale(ctx context.Context, statuses []models.SagaStatus, threshold time.Time) ([]models.Saga, error) {
	query := `
		SELECT saga_id, account_id, source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, current_step, source_withdraw_tx_id, target_deposit_tx_id,
			failure_reason, retry_count, last_retry_at, completed_at,
			created_at, updated_at
		FROM exchange_sagas
		WHERE status IN (?) AND created_at < ?
		ORDER BY created_at ASC
	`

	query, args, err := sqlx.In(query, statuses, threshold)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var sagas []models.Saga
	err = r.db.SelectContext(ctx, &sagas, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{statuses, threshold},
		"result_count", len(sagas),
		"error", err,
	)

	return sagas, err
}

// List returns sagas ordered by creation time descending, paginated.
func (r *SagaReaderRepository) List(ctx context.Context, limit, offset int) ([]models.Saga, error) {
	const query = `
		SELECT saga_id, account_id, source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, current_step, source_withdraw_tx_id, target_deposit_tx_id,
			failure_reason, retry_count, last_retry_at, completed_at,
			created_at, updated_at
		FROM exchange_sagas
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var sagas []models.Saga
	err := r.db.SelectContext(ctx, &sagas, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result_count", len(sagas),
		"error", err,
	)

	return sagas, err
}

// ListByStatus returns sagas in the given status, newest first, paginated.
func (r *SagaReaderRepository) ListByStatus(ctx context.Context, status models.SagaStatus, limit, offset int) ([]models.Saga, error) {
	const query = `
		SELECT saga_id, account_id, source_currency, target_currency,
			source_amount, target_amount, applied_rate,
			status, current_step, source_withdraw_tx_id, target_deposit_tx_id,
			failure_reason, retry_count, last_retry_at, completed_at,
			created_at, updated_at
		FROM exchange_sagas
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var sagas []models.Saga
	err := r.db.SelectContext(ctx, &sagas, query, status, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, limit, offset},
		"result_count", len(sagas),
		"error", err,
	)

	return sagas, err
}
