package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType identifies a saga lifecycle transition.
type EventType string

const (
	EventExchangeRequested     EventType = "EXCHANGE_REQUESTED"
	EventSourceWithdrawn       EventType = "SOURCE_WITHDRAWN"
	EventTargetDeposited       EventType = "TARGET_DEPOSITED"
	EventExchangeCompleted     EventType = "EXCHANGE_COMPLETED"
	EventExchangeFailed        EventType = "EXCHANGE_FAILED"
	EventCompensationStarted   EventType = "COMPENSATION_STARTED"
	EventCompensationCompleted EventType = "COMPENSATION_COMPLETED"
)

// ExchangeEvent is an immutable fact describing one saga transition.
// Events are published keyed by saga id, so consumers see all events of a
// single saga in order; delivery is at-least-once, never exactly-once.
type ExchangeEvent struct {
	EventID        string          `json:"event_id"`
	EventType      EventType       `json:"event_type"`
	SagaID         string          `json:"saga_id"`
	AccountID      string          `json:"account_id"`
	SourceCurrency Currency        `json:"source_currency"`
	TargetCurrency Currency        `json:"target_currency"`
	SourceAmount   decimal.Decimal `json:"source_amount"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	AppliedRate    decimal.Decimal `json:"applied_rate"`
	TransactionID  string          `json:"transaction_id,omitempty"` // Leg transaction id, when applicable
	FailureReason  string          `json:"failure_reason,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
	RetryCount     int             `json:"retry_count"` // Delivery retries through the DLQ pipeline
}

// NewExchangeEvent builds an event snapshotting the saga at the moment of
// the transition.
func NewExchangeEvent(saga *Saga, eventType EventType, transactionID, failureReason string) *ExchangeEvent {
	return &ExchangeEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SagaID:         saga.SagaID,
		AccountID:      saga.AccountID.String(),
		SourceCurrency: saga.SourceCurrency,
		TargetCurrency: saga.TargetCurrency,
		SourceAmount:   saga.SourceAmount,
		TargetAmount:   saga.TargetAmount,
		AppliedRate:    saga.AppliedRate,
		TransactionID:  transactionID,
		FailureReason:  failureReason,
		Timestamp:      time.Now(),
	}
}
