package consumers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
	"github.com/sbilibin2017/gw-exchange-saga/internal/publishers"
)

// MaxEventRetries caps how many delivery attempts the DLQ pipeline makes
// for one event before dropping it.
const MaxEventRetries = 3

// defaultBackoffBase is the base delay for DLQ redelivery backoff:
// base * 2^retryCount (5s, 10s, 20s).
const defaultBackoffBase = 5 * time.Second

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error) // Reads the next message
	Close() error                                           // Closes the Kafka reader
}

// DLQConsumer drains the dead-letter topic. Events under the retry cap are
// delayed with exponential backoff and forwarded unmodified to the retry
// topic; events at the cap are dropped with a terminal warning and require
// manual intervention.
type DLQConsumer struct {
	reader      KafkaReader
	retryWriter publishers.KafkaWriter
	backoffBase time.Duration
}

// NewDLQConsumer creates a consumer over the DLQ reader and retry topic
// writer.
func NewDLQConsumer(reader KafkaReader, retryWriter publishers.KafkaWriter) *DLQConsumer {
	return &DLQConsumer{
		reader:      reader,
		retryWriter: retryWriter,
		backoffBase: defaultBackoffBase,
	}
}

// Run consumes until the context is cancelled or the reader fails.
func (c *DLQConsumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Errorw("DLQ consumer read failed", "error", err)
			return
		}

		c.process(ctx, msg)
	}
}

func (c *DLQConsumer) process(ctx context.Context, msg kafka.Message) {
	var event models.ExchangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.Log.Errorw("DLQ consumer received malformed event", "error", err)
		return
	}

	logger.Log.Warnw("processing DLQ event",
		"event_type", event.EventType, "saga_id", event.SagaID,
		"retry_count", event.RetryCount, "partition", msg.Partition, "offset", msg.Offset)

	if event.RetryCount >= MaxEventRetries {
		logger.Log.Errorw("event exceeded max retry count, dropping; manual intervention required",
			"event_type", event.EventType, "saga_id", event.SagaID,
			"retry_count", event.RetryCount)
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(c.backoff(event.RetryCount)):
	}

	// forward unmodified, the retry consumer owns the counter
	if err := c.retryWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SagaID),
		Value: msg.Value,
	}); err != nil {
		logger.Log.Errorw("failed to forward event to retry topic",
			"saga_id", event.SagaID, "error", err)
		return
	}

	logger.Log.Infow("event forwarded to retry topic",
		"saga_id", event.SagaID, "retry_count", event.RetryCount)
}

func (c *DLQConsumer) backoff(retryCount int) time.Duration {
	return c.backoffBase * (1 << retryCount)
}
