package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeStatus is the caller-facing status of an exchange request.
type ExchangeStatus string

const (
	ExchangePending     ExchangeStatus = "PENDING"
	ExchangeProcessing  ExchangeStatus = "PROCESSING"
	ExchangeCompleted   ExchangeStatus = "COMPLETED"
	ExchangeFailed      ExchangeStatus = "FAILED"
	ExchangeCompensated ExchangeStatus = "COMPENSATED"
)

// ExchangeTransaction is the ledger entry for one exchange request, keyed
// by the caller-supplied idempotency key and one-to-one with a saga.
// Amounts and rate are frozen at creation, so a repeated lookup by the same
// client request id always returns the same figures.
type ExchangeTransaction struct {
	ClientRequestID string          `json:"client_request_id" db:"client_request_id"` // Caller-supplied idempotency key
	SagaID          string          `json:"saga_id" db:"saga_id"`                     // Saga driving this exchange
	AccountID       uuid.UUID       `json:"account_id" db:"account_id"`
	SourceCurrency  Currency        `json:"source_currency" db:"source_currency"`
	TargetCurrency  Currency        `json:"target_currency" db:"target_currency"`
	SourceAmount    decimal.Decimal `json:"source_amount" db:"source_amount"`
	TargetAmount    decimal.Decimal `json:"target_amount" db:"target_amount"`
	AppliedRate     decimal.Decimal `json:"applied_rate" db:"applied_rate"`
	Status          ExchangeStatus  `json:"status" db:"status"`
	FailureReason   *string         `json:"failure_reason" db:"failure_reason"`
	CompletedAt     *time.Time      `json:"completed_at" db:"completed_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// NewExchangeTransaction creates a PENDING ledger entry for the given saga.
func NewExchangeTransaction(clientRequestID string, saga *Saga) *ExchangeTransaction {
	return &ExchangeTransaction{
		ClientRequestID: clientRequestID,
		SagaID:          saga.SagaID,
		AccountID:       saga.AccountID,
		SourceCurrency:  saga.SourceCurrency,
		TargetCurrency:  saga.TargetCurrency,
		SourceAmount:    saga.SourceAmount,
		TargetAmount:    saga.TargetAmount,
		AppliedRate:     saga.AppliedRate,
		Status:          ExchangePending,
	}
}
