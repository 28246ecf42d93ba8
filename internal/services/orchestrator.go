package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// SagaWriter defines saga persistence operations used by the orchestrator.
type SagaWriter interface {
	Save(ctx context.Context, saga *models.Saga) error   // Persists a new saga
	Update(ctx context.Context, saga *models.Saga) error // Persists a saga state transition
}

// SagaReader defines saga read operations used by the orchestrator.
type SagaReader interface {
	GetBySagaID(ctx context.Context, sagaID string) (*models.Saga, error) // Returns a saga by id
}

// AccountClient is one account service's withdraw/deposit capability. Both
// operations are idempotent on the service side, keyed by idempotencyKey.
type AccountClient interface {
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency models.Currency, idempotencyKey, sagaID string) (*models.AccountTransaction, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency models.Currency, idempotencyKey, sagaID string) (*models.AccountTransaction, error)
}

// EventPublisher publishes saga lifecycle events. Publishing never fails
// from the orchestrator's point of view.
type EventPublisher interface {
	PublishExchangeRequested(ctx context.Context, saga *models.Saga)
	PublishSourceWithdrawn(ctx context.Context, saga *models.Saga, transactionID string)
	PublishTargetDeposited(ctx context.Context, saga *models.Saga, transactionID string)
	PublishExchangeCompleted(ctx context.Context, saga *models.Saga)
	PublishExchangeFailed(ctx context.Context, saga *models.Saga, failureReason string)
	PublishCompensationStarted(ctx context.Context, saga *models.Saga)
	PublishCompensationCompleted(ctx context.Context, saga *models.Saga)
}

// LedgerStatusWriter updates the exchange ledger entry tied to a saga.
type LedgerStatusWriter interface {
	UpdateStatus(ctx context.Context, sagaID string, status models.ExchangeStatus, failureReason *string) error
}

// SagaLocker grants per-saga execution leases.
type SagaLocker interface {
	Acquire(ctx context.Context, sagaID string) (bool, error)
	Release(ctx context.Context, sagaID string)
}

// SagaOrchestrator drives exchange sagas through their forward steps and,
// on any leg failure, through compensation. Execution is re-entrant: it
// resumes at the persisted current step, and the deterministic per-leg
// idempotency keys make repeating an already-applied leg harmless.
type SagaOrchestrator struct {
	sagaWriter SagaWriter
	sagaReader SagaReader
	current    AccountClient
	forex      AccountClient
	publisher  EventPublisher
	ledger     LedgerStatusWriter
	locker     SagaLocker
}

// NewSagaOrchestrator creates an orchestrator. current serves domestic
// (KRW) legs, forex serves every other currency.
func NewSagaOrchestrator(
	sagaWriter SagaWriter,
	sagaReader SagaReader,
	current AccountClient,
	forex AccountClient,
	publisher EventPublisher,
	ledger LedgerStatusWriter,
	locker SagaLocker,
) *SagaOrchestrator {
	return &SagaOrchestrator{
		sagaWriter: sagaWriter,
		sagaReader: sagaReader,
		current:    current,
		forex:      forex,
		publisher:  publisher,
		ledger:     ledger,
		locker:     locker,
	}
}

func (o *SagaOrchestrator) clientFor(currency models.Currency) AccountClient {
	if currency.IsDomestic() {
		return o.current
	}
	return o.forex
}

// CreateSaga persists a new saga in its initial state and announces it.
// The applied rate is frozen here and never re-resolved.
func (o *SagaOrchestrator) CreateSaga(
	ctx context.Context,
	accountID uuid.UUID,
	source, target models.Currency,
	sourceAmount, targetAmount, appliedRate decimal.Decimal,
) (*models.Saga, error) {
	saga := models.NewSaga(accountID, source, target, sourceAmount, targetAmount, appliedRate)

	if err := o.sagaWriter.Save(ctx, saga); err != nil {
		logger.Log.Errorw("failed to persist new saga", "saga_id", saga.SagaID, "error", err)
		return nil, fmt.Errorf("saving saga: %w", err)
	}

	o.publisher.PublishExchangeRequested(ctx, saga)

	logger.Log.Infow("saga created",
		"saga_id", saga.SagaID, "account_id", accountID,
		"source_currency", source, "target_currency", target,
		"source_amount", sourceAmount, "target_amount", targetAmount)
	return saga, nil
}

// ExecuteSaga drives the saga from its persisted current step until a
// terminal state. Concurrent executions of the same saga are mutually
// excluded by a lease; the loser skips without error.
func (o *SagaOrchestrator) ExecuteSaga(ctx context.Context, sagaID string) error {
	acquired, err := o.locker.Acquire(ctx, sagaID)
	if err != nil {
		return err
	}
	if !acquired {
		logger.Log.Infow("saga execution skipped, lease held elsewhere", "saga_id", sagaID)
		return nil
	}
	defer o.locker.Release(ctx, sagaID)

	saga, err := o.sagaReader.GetBySagaID(ctx, sagaID)
	if err != nil {
		return fmt.Errorf("loading saga %s: %w", sagaID, err)
	}

	if saga.Status.IsTerminal() {
		logger.Log.Infow("saga already terminal, nothing to execute",
			"saga_id", sagaID, "status", saga.Status)
		return nil
	}

	o.markLedgerProcessing(ctx, saga)

	if saga.Status == models.SagaCompensating {
		return o.runCompensation(ctx, saga)
	}

	return o.runForward(ctx, saga)
}

func (o *SagaOrchestrator) runForward(ctx context.Context, saga *models.Saga) error {
	for {
		switch saga.CurrentStep {
		case models.StepWithdrawSource:
			txn, err := o.clientFor(saga.SourceCurrency).Withdraw(ctx,
				saga.AccountID, saga.SourceAmount, saga.SourceCurrency,
				saga.WithdrawSourceKey(), saga.SagaID)
			if err != nil {
				return o.compensate(ctx, saga, fmt.Sprintf("source withdraw failed: %v", err))
			}

			saga.RecordSourceWithdraw(txn.TransactionID)
			if err := o.sagaWriter.Update(ctx, saga); err != nil {
				return fmt.Errorf("persisting withdraw step: %w", err)
			}
			o.publisher.PublishSourceWithdrawn(ctx, saga, txn.TransactionID)
			logger.Log.Infow("source withdrawn",
				"saga_id", saga.SagaID, "transaction_id", txn.TransactionID)

		case models.StepDepositTarget:
			txn, err := o.clientFor(saga.TargetCurrency).Deposit(ctx,
				saga.AccountID, saga.TargetAmount, saga.TargetCurrency,
				saga.DepositTargetKey(), saga.SagaID)
			if err != nil {
				return o.compensate(ctx, saga, fmt.Sprintf("target deposit failed: %v", err))
			}

			saga.RecordTargetDeposit(txn.TransactionID)
			if err := o.sagaWriter.Update(ctx, saga); err != nil {
				return fmt.Errorf("persisting deposit step: %w", err)
			}
			o.publisher.PublishTargetDeposited(ctx, saga, txn.TransactionID)
			logger.Log.Infow("target deposited",
				"saga_id", saga.SagaID, "transaction_id", txn.TransactionID)

		case models.StepCompleted:
			saga.Complete()
			if err := o.sagaWriter.Update(ctx, saga); err != nil {
				return fmt.Errorf("persisting completion: %w", err)
			}
			o.publisher.PublishExchangeCompleted(ctx, saga)
			o.updateLedger(ctx, saga.SagaID, models.ExchangeCompleted, nil)
			logger.Log.Infow("saga completed", "saga_id", saga.SagaID)
			return nil

		default:
			return fmt.Errorf("saga %s in unexpected forward step %s", saga.SagaID, saga.CurrentStep)
		}
	}
}

// compensate moves the saga into the compensation path after a forward leg
// failure and runs it to a terminal state.
func (o *SagaOrchestrator) compensate(ctx context.Context, saga *models.Saga, reason string) error {
	logger.Log.Warnw("saga leg failed, starting compensation",
		"saga_id", saga.SagaID, "step", saga.CurrentStep, "reason", reason)

	o.publisher.PublishExchangeFailed(ctx, saga, reason)

	saga.StartCompensation(reason)
	if err := o.sagaWriter.Update(ctx, saga); err != nil {
		return fmt.Errorf("persisting compensation start: %w", err)
	}
	o.publisher.PublishCompensationStarted(ctx, saga)

	return o.runCompensation(ctx, saga)
}

// runCompensation reverses applied legs in reverse order: the deposit is
// withdrawn back first, then the withdraw is deposited back. It is
// re-entrant at step granularity; a leg that never ran is skipped.
func (o *SagaOrchestrator) runCompensation(ctx context.Context, saga *models.Saga) error {
	if saga.CurrentStep == models.StepCompensateTargetWithdraw {
		if saga.TargetDepositTxID != nil {
			_, err := o.clientFor(saga.TargetCurrency).Withdraw(ctx,
				saga.AccountID, saga.TargetAmount, saga.TargetCurrency,
				saga.CompensateTargetKey(), saga.SagaID)
			if err != nil {
				return o.failCompensation(ctx, saga, err)
			}
			logger.Log.Infow("deposit leg reversed", "saga_id", saga.SagaID)
		}

		saga.CurrentStep = models.StepCompensateSourceDeposit
		if err := o.sagaWriter.Update(ctx, saga); err != nil {
			return fmt.Errorf("persisting compensation step: %w", err)
		}
	}

	if saga.SourceWithdrawTxID != nil {
		_, err := o.clientFor(saga.SourceCurrency).Deposit(ctx,
			saga.AccountID, saga.SourceAmount, saga.SourceCurrency,
			saga.CompensateSourceKey(), saga.SagaID)
		if err != nil {
			return o.failCompensation(ctx, saga, err)
		}
		logger.Log.Infow("withdraw leg reversed", "saga_id", saga.SagaID)
	}

	saga.MarkCompensated()
	if err := o.sagaWriter.Update(ctx, saga); err != nil {
		return fmt.Errorf("persisting compensation completion: %w", err)
	}
	o.publisher.PublishCompensationCompleted(ctx, saga)
	o.updateLedger(ctx, saga.SagaID, models.ExchangeCompensated, saga.FailureReason)

	logger.Log.Infow("saga compensated", "saga_id", saga.SagaID)
	return nil
}

// failCompensation parks the saga in the terminal FAILED state. Funds may
// be inconsistent at this point; resolution is manual.
func (o *SagaOrchestrator) failCompensation(ctx context.Context, saga *models.Saga, cause error) error {
	reason := fmt.Sprintf("compensation failed: %v", cause)

	logger.Log.Errorw("compensation failed, manual intervention required",
		"saga_id", saga.SagaID, "step", saga.CurrentStep, "error", cause)

	saga.Fail(reason)
	if err := o.sagaWriter.Update(ctx, saga); err != nil {
		return fmt.Errorf("persisting saga failure: %w", err)
	}
	o.publisher.PublishExchangeFailed(ctx, saga, reason)
	o.updateLedger(ctx, saga.SagaID, models.ExchangeFailed, &reason)

	return fmt.Errorf("saga %s: %s", saga.SagaID, reason)
}

// ForceCompensate is the recovery sweep's escalation for sagas that
// exhausted their retry budget: skip the forward path entirely and reverse
// whatever legs have been applied.
func (o *SagaOrchestrator) ForceCompensate(ctx context.Context, sagaID, reason string) error {
	acquired, err := o.locker.Acquire(ctx, sagaID)
	if err != nil {
		return err
	}
	if !acquired {
		logger.Log.Infow("forced compensation skipped, lease held elsewhere", "saga_id", sagaID)
		return nil
	}
	defer o.locker.Release(ctx, sagaID)

	saga, err := o.sagaReader.GetBySagaID(ctx, sagaID)
	if err != nil {
		return fmt.Errorf("loading saga %s: %w", sagaID, err)
	}

	if saga.Status.IsTerminal() {
		return nil
	}

	if saga.Status == models.SagaCompensating {
		return o.runCompensation(ctx, saga)
	}
	return o.compensate(ctx, saga, reason)
}

func (o *SagaOrchestrator) markLedgerProcessing(ctx context.Context, saga *models.Saga) {
	if saga.Status == models.SagaStarted {
		o.updateLedger(ctx, saga.SagaID, models.ExchangeProcessing, nil)
	}
}

// updateLedger keeps the ledger entry in step with the saga. A failed
// update is logged, not propagated: the saga row is the source of truth.
func (o *SagaOrchestrator) updateLedger(ctx context.Context, sagaID string, status models.ExchangeStatus, failureReason *string) {
	if err := o.ledger.UpdateStatus(ctx, sagaID, status, failureReason); err != nil {
		logger.Log.Errorw("failed to update ledger entry",
			"saga_id", sagaID, "status", status, "error", err)
	}
}
