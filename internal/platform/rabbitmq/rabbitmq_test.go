package rabbitmq

import (
	"context"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acknowledger struct {
	mu       sync.Mutex
	acks     []uint64
	nacks    []uint64
	requeues []bool
}

func (a *acknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acks = append(a.acks, tag)
	return nil
}

func (a *acknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacks = append(a.nacks, tag)
	a.requeues = append(a.requeues, requeue)
	return nil
}

func (a *acknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestUnitConsumeMessages(t *testing.T) {
	ack := &acknowledger{}
	deliveries := make(chan amqp.Delivery, 3)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, MessageId: "first", Body: []byte("ok")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, MessageId: "second", Body: []byte("fail")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, MessageId: "third", Body: []byte("ok"), Redelivered: true}
	close(deliveries)

	var handled []Message
	mq := &RabbitMQ{}
	errs := mq.start(context.Background(), deliveries, func(_ context.Context, message Message) error {
		handled = append(handled, message)
		if string(message.Body) == "fail" {
			return assert.AnError
		}
		return nil
	})

	var consumingErrors []error
	for err := range errs {
		consumingErrors = append(consumingErrors, err)
	}
	<-mq.Done()

	require.Len(t, consumingErrors, 1, "should report handler error")
	require.ErrorIs(t, consumingErrors[0], assert.AnError, "should wrap handler error")
	assert.Contains(t, consumingErrors[0].Error(), "second", "should name failed message")

	assert.Equal(t, []uint64{1, 3}, ack.acks, "should ack handled messages")
	assert.Equal(t, []uint64{2}, ack.nacks, "should nack failed message")
	assert.Equal(t, []bool{false}, ack.requeues, "should not requeue failed message")

	require.Len(t, handled, 3, "should handle every delivery")
	assert.True(t, handled[2].Redelivered, "should pass redelivery flag")
}

func TestUnitConsumeMessagesStopsOnContextCancel(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	ctx, cancel := context.WithCancel(context.Background())

	mq := &RabbitMQ{}
	errs := mq.start(ctx, deliveries, func(context.Context, Message) error { return nil })
	cancel()

	select {
	case <-mq.Done():
	case <-time.After(time.Second):
		t.Fatal("consuming should stop after context cancel")
	}

	_, open := <-errs
	assert.False(t, open, "should close errors channel")
}
