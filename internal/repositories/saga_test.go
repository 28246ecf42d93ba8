package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return sqlxDB, mock, func() { db.Close() }
}

func sagaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"saga_id", "account_id", "source_currency", "target_currency",
		"source_amount", "target_amount", "applied_rate",
		"status", "current_step", "source_withdraw_tx_id", "target_deposit_tx_id",
		"failure_reason", "retry_count", "last_retry_at", "completed_at",
		"created_at", "updated_at",
	})
}

func TestSagaWriterRepository_Save(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	saga := models.NewSaga(
		uuid.New(), models.USD, models.KRW,
		decimal.NewFromInt(100), decimal.NewFromInt(138550), decimal.NewFromFloat(1385.5),
	)

	mock.ExpectExec("INSERT INTO exchange_sagas").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewSagaWriterRepository(db, nil)
	err := repo.Save(context.Background(), saga)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaWriterRepository_Save_UsesTxFromContext(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO exchange_sagas").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewSagaWriterRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	saga := models.NewSaga(
		uuid.New(), models.EUR, models.KRW,
		decimal.NewFromInt(50), decimal.NewFromInt(75000), decimal.NewFromFloat(1500),
	)
	err = repo.Save(context.Background(), saga)
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaWriterRepository_Update(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	saga := models.NewSaga(
		uuid.New(), models.USD, models.KRW,
		decimal.NewFromInt(100), decimal.NewFromInt(138550), decimal.NewFromFloat(1385.5),
	)
	saga.RecordSourceWithdraw("tx-1")

	mock.ExpectExec("UPDATE exchange_sagas").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSagaWriterRepository(db, nil)
	err := repo.Update(context.Background(), saga)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaReaderRepository_GetBySagaID(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	accountID := uuid.New()
	now := time.Now()

	rows := sagaRows().AddRow(
		"saga-1", accountID, "USD", "KRW",
		"100", "138550", "1385.5",
		"STARTED", "WITHDRAW_SOURCE", nil, nil,
		nil, 0, nil, nil,
		now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM exchange_sagas").
		WithArgs("saga-1").
		WillReturnRows(rows)

	repo := NewSagaReaderRepository(db)
	saga, err := repo.GetBySagaID(context.Background(), "saga-1")

	assert.NoError(t, err)
	assert.Equal(t, "saga-1", saga.SagaID)
	assert.Equal(t, models.SagaStarted, saga.Status)
	assert.Equal(t, models.StepWithdrawSource, saga.CurrentStep)
	assert.Nil(t, saga.SourceWithdrawTxID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaReaderRepository_GetBySagaID_NotFound(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	mock.ExpectQuery("SELECT (.+) FROM exchange_sagas").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewSagaReaderRepository(db)
	saga, err := repo.GetBySagaID(context.Background(), "missing")

	assert.Nil(t, saga)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaReaderRepository_ListStale(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	accountID := uuid.New()
	created := time.Now().Add(-10 * time.Minute)

	rows := sagaRows().AddRow(
		"saga-stale", accountID, "USD", "KRW",
		"100", "138550", "1385.5",
		"STARTED", "WITHDRAW_SOURCE", nil, nil,
		nil, 1, nil, nil,
		created, created,
	)

	mock.ExpectQuery("SELECT (.+) FROM exchange_sagas").
		WillReturnRows(rows)

	repo := NewSagaReaderRepository(db)
	statuses := []models.SagaStatus{models.SagaStarted, models.SagaSourceWithdrawn, models.SagaCompensating}
	sagas, err := repo.ListStale(context.Background(), statuses, time.Now().Add(-5*time.Minute))

	assert.NoError(t, err)
	assert.Len(t, sagas, 1)
	assert.Equal(t, "saga-stale", sagas[0].SagaID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSagaReaderRepository_ListByStatus(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	accountID := uuid.New()
	now := time.Now()

	rows := sagaRows().AddRow(
		"saga-2", accountID, "EUR", "KRW",
		"50", "75000", "1500",
		"COMPENSATED", "COMPENSATE_SOURCE_DEPOSIT", "tx-1", nil,
		"deposit failed", 0, nil, now,
		now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM exchange_sagas").
		WithArgs("COMPENSATED", 20, 0).
		WillReturnRows(rows)

	repo := NewSagaReaderRepository(db)
	sagas, err := repo.ListByStatus(context.Background(), models.SagaCompensated, 20, 0)

	assert.NoError(t, err)
	assert.Len(t, sagas, 1)
	assert.Equal(t, models.SagaCompensated, sagas[0].Status)
	assert.Equal(t, "tx-1", *sagas[0].SourceWithdrawTxID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
