package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// fakeReader replays queued messages, then fails with io.EOF to stop Run.
type fakeReader struct {
	messages []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) Close() error { return nil }

// fakeWriter records written messages and fails on demand.
type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func eventMessage(t *testing.T, retryCount int) (models.ExchangeEvent, kafka.Message) {
	saga := models.NewSaga(
		uuid.New(), models.USD, models.KRW,
		decimal.NewFromInt(100), decimal.NewFromInt(138550), decimal.NewFromFloat(1385.5),
	)
	event := models.NewExchangeEvent(saga, models.EventSourceWithdrawn, "tx-1", "")
	event.RetryCount = retryCount

	data, err := json.Marshal(event)
	assert.NoError(t, err)

	return *event, kafka.Message{Key: []byte(event.SagaID), Value: data}
}

func TestDLQConsumer_ForwardsToRetryTopic(t *testing.T) {
	event, msg := eventMessage(t, 1)

	retryWriter := &fakeWriter{}
	consumer := NewDLQConsumer(&fakeReader{messages: []kafka.Message{msg}}, retryWriter)
	consumer.backoffBase = time.Millisecond

	consumer.Run(context.Background())

	assert.Len(t, retryWriter.messages, 1)
	assert.Equal(t, event.SagaID, string(retryWriter.messages[0].Key))
	// forwarded unmodified, the retry consumer owns the counter
	assert.Equal(t, msg.Value, retryWriter.messages[0].Value)
}

func TestDLQConsumer_DropsEventAtRetryCap(t *testing.T) {
	_, msg := eventMessage(t, MaxEventRetries)

	retryWriter := &fakeWriter{}
	consumer := NewDLQConsumer(&fakeReader{messages: []kafka.Message{msg}}, retryWriter)
	consumer.backoffBase = time.Millisecond

	consumer.Run(context.Background())

	assert.Empty(t, retryWriter.messages, "event at the retry cap must be dropped, not forwarded")
}

func TestDLQConsumer_BackoffGrowsExponentially(t *testing.T) {
	consumer := NewDLQConsumer(&fakeReader{}, &fakeWriter{})

	assert.Equal(t, 5*time.Second, consumer.backoff(0))
	assert.Equal(t, 10*time.Second, consumer.backoff(1))
	assert.Equal(t, 20*time.Second, consumer.backoff(2))
}

func TestDLQConsumer_SkipsMalformedEvent(t *testing.T) {
	retryWriter := &fakeWriter{}
	consumer := NewDLQConsumer(&fakeReader{messages: []kafka.Message{
		{Key: []byte("saga"), Value: []byte("not-json")},
	}}, retryWriter)
	consumer.backoffBase = time.Millisecond

	assert.NotPanics(t, func() { consumer.Run(context.Background()) })
	assert.Empty(t, retryWriter.messages)
}

func TestRetryConsumer_RepublishesToMainTopic(t *testing.T) {
	event, msg := eventMessage(t, 1)

	mainWriter := &fakeWriter{}
	dlqWriter := &fakeWriter{}
	consumer := NewRetryConsumer(&fakeReader{messages: []kafka.Message{msg}}, mainWriter, dlqWriter)

	consumer.Run(context.Background())

	assert.Len(t, mainWriter.messages, 1)
	assert.Equal(t, event.SagaID, string(mainWriter.messages[0].Key))
	assert.Empty(t, dlqWriter.messages)
}

func TestRetryConsumer_BouncesFailureBackToDLQ(t *testing.T) {
	event, msg := eventMessage(t, 1)

	mainWriter := &fakeWriter{err: errors.New("broker unavailable")}
	dlqWriter := &fakeWriter{}
	consumer := NewRetryConsumer(&fakeReader{messages: []kafka.Message{msg}}, mainWriter, dlqWriter)

	consumer.Run(context.Background())

	assert.Len(t, dlqWriter.messages, 1)

	var bounced models.ExchangeEvent
	assert.NoError(t, json.Unmarshal(dlqWriter.messages[0].Value, &bounced))
	assert.Equal(t, event.SagaID, bounced.SagaID)
	assert.Equal(t, event.RetryCount+1, bounced.RetryCount, "bounce must increment the retry count")
}

func TestEventLogConsumer_HandlesAllEventTypes(t *testing.T) {
	types := []models.EventType{
		models.EventExchangeRequested,
		models.EventSourceWithdrawn,
		models.EventTargetDeposited,
		models.EventExchangeCompleted,
		models.EventExchangeFailed,
		models.EventCompensationStarted,
		models.EventCompensationCompleted,
		models.EventType("SOMETHING_ELSE"),
	}

	var messages []kafka.Message
	for _, typ := range types {
		event, msg := eventMessage(t, 0)
		event.EventType = typ
		data, err := json.Marshal(&event)
		assert.NoError(t, err)
		msg.Value = data
		messages = append(messages, msg)
	}

	consumer := NewEventLogConsumer(&fakeReader{messages: messages})
	assert.NotPanics(t, func() { consumer.Run(context.Background()) })
}

func TestConsumers_StopOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		NewDLQConsumer(&blockedReader{}, &fakeWriter{}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop on context cancel")
	}
}

// blockedReader blocks until the context is cancelled.
type blockedReader struct{}

func (r *blockedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *blockedReader) Close() error { return nil }
