package consumers

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// EventLogConsumer consumes the main event topic and logs every lifecycle
// transition. It treats delivery as at-least-once, so a redelivered event
// is simply logged again.
type EventLogConsumer struct {
	reader KafkaReader
}

func NewEventLogConsumer(reader KafkaReader) *EventLogConsumer {
	return &EventLogConsumer{reader: reader}
}

// Run consumes until the context is cancelled or the reader fails.
func (c *EventLogConsumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Errorw("event log consumer read failed", "error", err)
			return
		}

		var event models.ExchangeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Errorw("event log consumer received malformed event", "error", err)
			continue
		}

		c.logEvent(&event)
	}
}

func (c *EventLogConsumer) logEvent(event *models.ExchangeEvent) {
	switch event.EventType {
	case models.EventExchangeRequested:
		logger.Log.Infow("exchange requested",
			"saga_id", event.SagaID, "source_amount", event.SourceAmount)
	case models.EventSourceWithdrawn:
		logger.Log.Infow("source withdrawn",
			"saga_id", event.SagaID, "transaction_id", event.TransactionID)
	case models.EventTargetDeposited:
		logger.Log.Infow("target deposited",
			"saga_id", event.SagaID, "transaction_id", event.TransactionID)
	case models.EventExchangeCompleted:
		logger.Log.Infow("exchange completed", "saga_id", event.SagaID)
	case models.EventExchangeFailed:
		logger.Log.Warnw("exchange failed",
			"saga_id", event.SagaID, "reason", event.FailureReason)
	case models.EventCompensationStarted:
		logger.Log.Warnw("compensation started", "saga_id", event.SagaID)
	case models.EventCompensationCompleted:
		logger.Log.Infow("compensation completed", "saga_id", event.SagaID)
	default:
		logger.Log.Warnw("unknown event type",
			"event_type", event.EventType, "saga_id", event.SagaID)
	}
}
