package publishers

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// Saga event topics. All three streams are partitioned by saga id, so the
// events of one saga are totally ordered relative to each other.
const (
	TopicSagaEvents = "exchange.saga.events"
	TopicSagaDLQ    = "exchange.saga.dlq"
	TopicSagaRetry  = "exchange.saga.retry"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExchangeEventPublisher publishes saga lifecycle events to the main event
// topic. Publishing is a best-effort audit trail: the orchestrator never
// blocks a state transition on delivery. A failed publish is forwarded to
// the DLQ with an incremented retry count; a failed DLQ forward is logged
// and dropped.
type ExchangeEventPublisher struct {
	mainWriter KafkaWriter
	dlqWriter  KafkaWriter
}

// NewExchangeEventPublisher creates a publisher over the main and DLQ topic
// writers.
func NewExchangeEventPublisher(mainWriter, dlqWriter KafkaWriter) *ExchangeEventPublisher {
	return &ExchangeEventPublisher{
		mainWriter: mainWriter,
		dlqWriter:  dlqWriter,
	}
}

// PublishExchangeRequested emits the event for saga creation.
func (p *ExchangeEventPublisher) PublishExchangeRequested(ctx context.Context, saga *models.Saga) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventExchangeRequested, "", ""))
}

// PublishSourceWithdrawn emits the event for a completed withdraw leg.
func (p *ExchangeEventPublisher) PublishSourceWithdrawn(ctx context.Context, saga *models.Saga, transactionID string) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventSourceWithdrawn, transactionID, ""))
}

// PublishTargetDeposited emits the event for a completed deposit leg.
func (p *ExchangeEventPublisher) PublishTargetDeposited(ctx context.Context, saga *models.Saga, transactionID string) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventTargetDeposited, transactionID, ""))
}

// PublishExchangeCompleted emits the terminal success event.
func (p *ExchangeEventPublisher) PublishExchangeCompleted(ctx context.Context, saga *models.Saga) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventExchangeCompleted, "", ""))
}

// PublishExchangeFailed emits a failure event with the reason.
func (p *ExchangeEventPublisher) PublishExchangeFailed(ctx context.Context, saga *models.Saga, failureReason string) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventExchangeFailed, "", failureReason))
}

// PublishCompensationStarted emits the event for entering compensation.
func (p *ExchangeEventPublisher) PublishCompensationStarted(ctx context.Context, saga *models.Saga) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventCompensationStarted, "", ""))
}

// PublishCompensationCompleted emits the terminal compensation event.
func (p *ExchangeEventPublisher) PublishCompensationCompleted(ctx context.Context, saga *models.Saga) {
	p.publish(ctx, models.NewExchangeEvent(saga, models.EventCompensationCompleted, "", ""))
}

func (p *ExchangeEventPublisher) publish(ctx context.Context, event *models.ExchangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal exchange event",
			"event_type", event.EventType, "saga_id", event.SagaID, "error", err)
		p.sendToDLQ(ctx, event)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SagaID),
		Value: data,
	}

	if err := p.mainWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish exchange event",
			"event_type", event.EventType, "saga_id", event.SagaID, "error", err)
		p.sendToDLQ(ctx, event)
		return
	}

	logger.Log.Infow("exchange event published",
		"event_type", event.EventType, "saga_id", event.SagaID)
}

func (p *ExchangeEventPublisher) sendToDLQ(ctx context.Context, event *models.ExchangeEvent) {
	event.RetryCount++

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal exchange event for DLQ",
			"event_type", event.EventType, "saga_id", event.SagaID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SagaID),
		Value: data,
	}

	if err := p.dlqWriter.WriteMessages(ctx, msg); err != nil {
		// no further fallback, the event is lost from the audit trail
		logger.Log.Errorw("failed to forward exchange event to DLQ",
			"event_type", event.EventType, "saga_id", event.SagaID, "error", err)
		return
	}

	logger.Log.Warnw("exchange event sent to DLQ",
		"event_type", event.EventType, "saga_id", event.SagaID, "retry_count", event.RetryCount)
}
