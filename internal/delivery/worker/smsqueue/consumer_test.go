package smsqueue

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"votegate/internal/infra/sms"
	mockService "votegate/internal/mocks/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC)

// recordingAck captures the outcome of one delivery.
type recordingAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *recordingAck) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeue = requeue

	return nil
}

func (a *recordingAck) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

func newTestConsumer(sender *mockService.MockSMSSender) *Consumer {
	return &Consumer{
		sender: sender,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return testNow },
	}
}

func jobDelivery(t *testing.T, job sms.Job, redelivered bool) (amqp.Delivery, *recordingAck) {
	t.Helper()

	body, err := sms.EncodeJob(job)
	require.NoError(t, err)

	ack := &recordingAck{}

	return amqp.Delivery{Acknowledger: ack, Body: body, Redelivered: redelivered}, ack
}

func freshJob() sms.Job {
	return sms.Job{
		Phone:      "+237600000000",
		Message:    "Your votegate code is 123456.",
		RequestID:  "req-1",
		EnqueuedAt: testNow.Add(-time.Minute),
	}
}

func TestConsumer_DeliversAndAcks(t *testing.T) {
	sender := mockService.NewMockSMSSender(t)
	sender.EXPECT().Send(mock.Anything, "+237600000000", "Your votegate code is 123456.").Return(nil)

	d, ack := jobDelivery(t, freshJob(), false)
	newTestConsumer(sender).process(context.Background(), d)

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestConsumer_SendFailures(t *testing.T) {
	tests := []struct {
		name        string
		redelivered bool
		wantRequeue bool
	}{
		{name: "first failure is requeued", redelivered: false, wantRequeue: true},
		{name: "second failure is dropped", redelivered: true, wantRequeue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := mockService.NewMockSMSSender(t)
			sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway down"))

			d, ack := jobDelivery(t, freshJob(), tt.redelivered)
			newTestConsumer(sender).process(context.Background(), d)

			assert.True(t, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
		})
	}
}

func TestConsumer_DropsUnusableJobs(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		ack := &recordingAck{}
		newTestConsumer(mockService.NewMockSMSSender(t)).process(context.Background(), amqp.Delivery{
			Acknowledger: ack,
			Body:         []byte(`{"phone":`),
		})

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})

	t.Run("stale job", func(t *testing.T) {
		job := freshJob()
		job.EnqueuedAt = testNow.Add(-time.Hour)

		d, ack := jobDelivery(t, job, false)
		newTestConsumer(mockService.NewMockSMSSender(t)).process(context.Background(), d)

		assert.True(t, ack.acked)
	})
}

func TestConsumer_ServeWithoutQueue(t *testing.T) {
	c := newTestConsumer(mockService.NewMockSMSSender(t))

	assert.NoError(t, c.Serve(context.Background()))
}

func TestConsumer_ServeReconnects(t *testing.T) {
	c := newTestConsumer(mockService.NewMockSMSSender(t))
	c.url = "amqp://broker"
	c.minRetryDelay = time.Millisecond
	c.maxRetryDelay = 2 * time.Millisecond

	calls := 0
	c.connect = func(_ context.Context, ready func()) error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp: connection refused")
		}
		ready()
		c.stop()

		return nil
	}

	assert.NoError(t, c.Serve(context.Background()))
	assert.Equal(t, 3, calls)
}

func TestConsumer_ServeStopsWhileWaiting(t *testing.T) {
	c := newTestConsumer(mockService.NewMockSMSSender(t))
	c.url = "amqp://broker"
	c.minRetryDelay = time.Hour
	c.maxRetryDelay = time.Hour

	calls := 0
	c.connect = func(context.Context, func()) error {
		calls++

		return errors.New("dial tcp: connection refused")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve kept waiting after its context ended")
	}
	assert.Equal(t, 1, calls)
}
