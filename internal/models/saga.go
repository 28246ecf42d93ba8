package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SagaStatus is the lifecycle status of an exchange saga.
type SagaStatus string

// Saga statuses. COMPLETED, COMPENSATED and FAILED are terminal.
const (
	SagaStarted         SagaStatus = "STARTED"
	SagaSourceWithdrawn SagaStatus = "SOURCE_WITHDRAWN"
	SagaTargetDeposited SagaStatus = "TARGET_DEPOSITED"
	SagaCompleted       SagaStatus = "COMPLETED"
	SagaCompensating    SagaStatus = "COMPENSATING"
	SagaCompensated     SagaStatus = "COMPENSATED"
	SagaFailed          SagaStatus = "FAILED"
)

// IsTerminal reports whether no further mutation may occur.
func (s SagaStatus) IsTerminal() bool {
	return s == SagaCompleted || s == SagaCompensated || s == SagaFailed
}

// SagaStep is the step the saga executor resumes at.
type SagaStep string

const (
	StepWithdrawSource           SagaStep = "WITHDRAW_SOURCE"
	StepDepositTarget            SagaStep = "DEPOSIT_TARGET"
	StepCompleted                SagaStep = "COMPLETED"
	StepCompensateTargetWithdraw SagaStep = "COMPENSATE_TARGET_WITHDRAW"
	StepCompensateSourceDeposit  SagaStep = "COMPENSATE_SOURCE_DEPOSIT"
	StepFailed                   SagaStep = "FAILED"
)

// MaxSagaRetries bounds how many times a stale saga is re-driven before it
// is forced into compensation.
const MaxSagaRetries = 3

// Saga is the durable coordination record for one currency exchange.
// The two leg transaction ids are nil until the corresponding remote leg
// has been recorded; TargetDepositTxID is never set before
// SourceWithdrawTxID.
type Saga struct {
	SagaID             string          `json:"saga_id" db:"saga_id"`                             // Globally unique saga identifier
	AccountID          uuid.UUID       `json:"account_id" db:"account_id"`                       // Owning account
	SourceCurrency     Currency        `json:"source_currency" db:"source_currency"`             // Currency withdrawn
	TargetCurrency     Currency        `json:"target_currency" db:"target_currency"`             // Currency deposited
	SourceAmount       decimal.Decimal `json:"source_amount" db:"source_amount"`                 // Amount withdrawn from source
	TargetAmount       decimal.Decimal `json:"target_amount" db:"target_amount"`                 // Amount deposited to target
	AppliedRate        decimal.Decimal `json:"applied_rate" db:"applied_rate"`                   // Rate frozen at saga creation
	Status             SagaStatus      `json:"status" db:"status"`                               // Current status
	CurrentStep        SagaStep        `json:"current_step" db:"current_step"`                   // Step the executor resumes at
	SourceWithdrawTxID *string         `json:"source_withdraw_tx_id" db:"source_withdraw_tx_id"` // Recorded withdraw leg transaction id
	TargetDepositTxID  *string         `json:"target_deposit_tx_id" db:"target_deposit_tx_id"`   // Recorded deposit leg transaction id
	FailureReason      *string         `json:"failure_reason" db:"failure_reason"`               // Reason for failure or compensation
	RetryCount         int             `json:"retry_count" db:"retry_count"`                     // Recovery sweep retries so far
	LastRetryAt        *time.Time      `json:"last_retry_at" db:"last_retry_at"`                 // Timestamp of last sweep retry
	CompletedAt        *time.Time      `json:"completed_at" db:"completed_at"`                   // Timestamp of reaching a terminal status
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// NewSaga creates a saga in its initial STARTED / WITHDRAW_SOURCE state.
func NewSaga(accountID uuid.UUID, source, target Currency, sourceAmount, targetAmount, appliedRate decimal.Decimal) *Saga {
	return &Saga{
		SagaID:         uuid.NewString(),
		AccountID:      accountID,
		SourceCurrency: source,
		TargetCurrency: target,
		SourceAmount:   sourceAmount,
		TargetAmount:   targetAmount,
		AppliedRate:    appliedRate,
		Status:         SagaStarted,
		CurrentStep:    StepWithdrawSource,
	}
}

// RecordSourceWithdraw stores the withdraw leg transaction id and advances
// to the deposit step.
func (s *Saga) RecordSourceWithdraw(txID string) {
	s.SourceWithdrawTxID = &txID
	s.CurrentStep = StepDepositTarget
	s.Status = SagaSourceWithdrawn
}

// RecordTargetDeposit stores the deposit leg transaction id and advances
// to completion.
func (s *Saga) RecordTargetDeposit(txID string) {
	s.TargetDepositTxID = &txID
	s.CurrentStep = StepCompleted
	s.Status = SagaTargetDeposited
}

// Complete marks the saga terminally successful.
func (s *Saga) Complete() {
	now := time.Now()
	s.Status = SagaCompleted
	s.CurrentStep = StepCompleted
	s.CompletedAt = &now
}

// Fail marks the saga terminally failed with the given reason.
func (s *Saga) Fail(reason string) {
	now := time.Now()
	s.Status = SagaFailed
	s.CurrentStep = StepFailed
	s.FailureReason = &reason
	s.CompletedAt = &now
}

// StartCompensation moves the saga into the compensation path. The starting
// step depends on which legs actually ran.
func (s *Saga) StartCompensation(reason string) {
	s.Status = SagaCompensating
	s.FailureReason = &reason
	if s.TargetDepositTxID != nil {
		s.CurrentStep = StepCompensateTargetWithdraw
	} else {
		s.CurrentStep = StepCompensateSourceDeposit
	}
}

// MarkCompensated marks the saga terminally compensated.
func (s *Saga) MarkCompensated() {
	now := time.Now()
	s.Status = SagaCompensated
	s.CompletedAt = &now
}

// IncrementRetry bumps the recovery retry counter.
func (s *Saga) IncrementRetry() {
	now := time.Now()
	s.RetryCount++
	s.LastRetryAt = &now
}

// CanRetry reports whether the recovery sweep may re-drive the saga.
func (s *Saga) CanRetry() bool {
	return s.RetryCount < MaxSagaRetries
}

// Deterministic per-leg idempotency keys. The account services deduplicate
// by these keys, which is what makes re-entrant execution and repeated
// compensation safe.

// WithdrawSourceKey is the idempotency key for the forward withdraw leg.
func (s *Saga) WithdrawSourceKey() string { return s.SagaID + "-withdraw-source" }

// DepositTargetKey is the idempotency key for the forward deposit leg.
func (s *Saga) DepositTargetKey() string { return s.SagaID + "-deposit-target" }

// CompensateTargetKey is the idempotency key for reversing the deposit leg.
func (s *Saga) CompensateTargetKey() string { return s.SagaID + "-compensate-target" }

// CompensateSourceKey is the idempotency key for reversing the withdraw leg.
func (s *Saga) CompensateSourceKey() string { return s.SagaID + "-compensate-source" }
