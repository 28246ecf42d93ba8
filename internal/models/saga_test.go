package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestSaga() *Saga {
	return NewSaga(
		uuid.New(),
		USD,
		KRW,
		decimal.NewFromInt(100),
		decimal.NewFromInt(138550),
		decimal.NewFromFloat(1385.5),
	)
}

func TestNewSaga_InitialState(t *testing.T) {
	saga := newTestSaga()

	assert.NotEmpty(t, saga.SagaID)
	assert.Equal(t, SagaStarted, saga.Status)
	assert.Equal(t, StepWithdrawSource, saga.CurrentStep)
	assert.Nil(t, saga.SourceWithdrawTxID)
	assert.Nil(t, saga.TargetDepositTxID)
	assert.Zero(t, saga.RetryCount)
}

func TestSaga_ForwardTransitions(t *testing.T) {
	saga := newTestSaga()

	saga.RecordSourceWithdraw("tx-withdraw-1")
	assert.Equal(t, SagaSourceWithdrawn, saga.Status)
	assert.Equal(t, StepDepositTarget, saga.CurrentStep)
	assert.Equal(t, "tx-withdraw-1", *saga.SourceWithdrawTxID)

	saga.RecordTargetDeposit("tx-deposit-1")
	assert.Equal(t, SagaTargetDeposited, saga.Status)
	assert.Equal(t, StepCompleted, saga.CurrentStep)
	assert.Equal(t, "tx-deposit-1", *saga.TargetDepositTxID)

	saga.Complete()
	assert.Equal(t, SagaCompleted, saga.Status)
	assert.NotNil(t, saga.CompletedAt)
	assert.True(t, saga.Status.IsTerminal())
}

func TestSaga_StartCompensation_AfterDeposit(t *testing.T) {
	saga := newTestSaga()
	saga.RecordSourceWithdraw("tx-withdraw-1")
	saga.RecordTargetDeposit("tx-deposit-1")

	saga.StartCompensation("deposit verification failed")

	assert.Equal(t, SagaCompensating, saga.Status)
	assert.Equal(t, StepCompensateTargetWithdraw, saga.CurrentStep)
	assert.Equal(t, "deposit verification failed", *saga.FailureReason)
}

func TestSaga_StartCompensation_BeforeDeposit(t *testing.T) {
	saga := newTestSaga()
	saga.RecordSourceWithdraw("tx-withdraw-1")

	saga.StartCompensation("deposit failed")

	assert.Equal(t, SagaCompensating, saga.Status)
	assert.Equal(t, StepCompensateSourceDeposit, saga.CurrentStep)
}

func TestSaga_Fail_IsTerminal(t *testing.T) {
	saga := newTestSaga()

	saga.Fail("compensation failed: account not active")

	assert.Equal(t, SagaFailed, saga.Status)
	assert.Equal(t, StepFailed, saga.CurrentStep)
	assert.NotNil(t, saga.CompletedAt)
	assert.True(t, saga.Status.IsTerminal())
}

func TestSaga_RetryBudget(t *testing.T) {
	saga := newTestSaga()

	for i := 0; i < MaxSagaRetries; i++ {
		assert.True(t, saga.CanRetry())
		saga.IncrementRetry()
	}

	assert.False(t, saga.CanRetry())
	assert.Equal(t, MaxSagaRetries, saga.RetryCount)
	assert.NotNil(t, saga.LastRetryAt)
}

func TestSaga_IdempotencyKeys(t *testing.T) {
	saga := newTestSaga()

	assert.Equal(t, saga.SagaID+"-withdraw-source", saga.WithdrawSourceKey())
	assert.Equal(t, saga.SagaID+"-deposit-target", saga.DepositTargetKey())
	assert.Equal(t, saga.SagaID+"-compensate-target", saga.CompensateTargetKey())
	assert.Equal(t, saga.SagaID+"-compensate-source", saga.CompensateSourceKey())
}

func TestCurrency_Validation(t *testing.T) {
	assert.True(t, USD.IsValid())
	assert.True(t, KRW.IsValid())
	assert.False(t, Currency("XXX").IsValid())

	assert.True(t, KRW.IsDomestic())
	assert.False(t, USD.IsDomestic())
}

func TestRate_TargetAmount_RoundsDown(t *testing.T) {
	rate := &Rate{
		SourceCurrency: USD,
		TargetCurrency: EUR,
		Rate:           decimal.NewFromFloat(0.93),
		Spread:         decimal.NewFromFloat(0.005),
		EffectiveRate:  decimal.NewFromFloat(0.92535),
	}

	got := rate.TargetAmount(decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromFloat(92.53).Equal(got), "got %s", got)
}
