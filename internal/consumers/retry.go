package consumers

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
	"github.com/sbilibin2017/gw-exchange-saga/internal/publishers"
)

// RetryConsumer drains the retry topic and attempts to republish each
// event to the main topic. A failed republish increments the retry count
// and bounces the event back to the DLQ, closing the bounded retry loop.
type RetryConsumer struct {
	reader     KafkaReader
	mainWriter publishers.KafkaWriter
	dlqWriter  publishers.KafkaWriter
}

// NewRetryConsumer creates a consumer over the retry topic reader and the
// main/DLQ writers.
func NewRetryConsumer(reader KafkaReader, mainWriter, dlqWriter publishers.KafkaWriter) *RetryConsumer {
	return &RetryConsumer{
		reader:     reader,
		mainWriter: mainWriter,
		dlqWriter:  dlqWriter,
	}
}

// Run consumes until the context is cancelled or the reader fails.
func (c *RetryConsumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Errorw("retry consumer read failed", "error", err)
			return
		}

		c.process(ctx, msg)
	}
}

func (c *RetryConsumer) process(ctx context.Context, msg kafka.Message) {
	var event models.ExchangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.Log.Errorw("retry consumer received malformed event", "error", err)
		return
	}

	logger.Log.Infow("processing retry event",
		"event_type", event.EventType, "saga_id", event.SagaID,
		"retry_count", event.RetryCount, "partition", msg.Partition, "offset", msg.Offset)

	err := c.mainWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SagaID),
		Value: msg.Value,
	})
	if err == nil {
		logger.Log.Infow("event republished to main topic",
			"event_type", event.EventType, "saga_id", event.SagaID)
		return
	}

	logger.Log.Errorw("failed to republish event, bouncing back to DLQ",
		"saga_id", event.SagaID, "error", err)

	event.RetryCount++
	data, err := json.Marshal(&event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for DLQ bounce",
			"saga_id", event.SagaID, "error", err)
		return
	}

	if err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SagaID),
		Value: data,
	}); err != nil {
		logger.Log.Errorw("failed to send event back to DLQ",
			"saga_id", event.SagaID, "error", err)
		return
	}

	logger.Log.Warnw("event sent back to DLQ",
		"saga_id", event.SagaID, "retry_count", event.RetryCount)
}
