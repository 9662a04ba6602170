package sms

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/errors"
	"votegate/internal/util"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueSender enqueues SMS jobs on RabbitMQ for the notifier to deliver
type QueueSender struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewQueueSender creates a sender that dials lazily on first use
func NewQueueSender(url, queue string, logger *slog.Logger) *QueueSender {
	return &QueueSender{url: url, queue: queue, logger: logger}
}

// Send publishes a persistent job to the durable queue
func (s *QueueSender) Send(ctx context.Context, phone, message string) error {
	body, err := EncodeJob(Job{
		Phone:      phone,
		Message:    message,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		s.reset()

		return errors.Wrap(err, "publish sms job")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("SMS job queued",
		slog.String("queue", s.queue),
		slog.String("phone", util.MaskPhone(phone)),
	)

	return nil
}

// channel returns an open channel, dialing and declaring the queue when needed. Caller holds mu.
func (s *QueueSender) channel() (*amqp.Channel, error) {
	if s.ch != nil && !s.ch.IsClosed() {
		return s.ch, nil
	}
	s.reset()

	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", s.queue)
	}

	s.conn, s.ch = conn, ch

	return ch, nil
}

func (s *QueueSender) reset() {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn, s.ch = nil, nil
}

// Close releases the broker connection
func (s *QueueSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()

	return nil
}

// EncodeJob serializes a job for the queue
func EncodeJob(job Job) ([]byte, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return nil, errors.Wrap(err, "marshal sms job")
	}

	return body, nil
}

// DecodeJob parses a queued job and rejects incomplete ones
func DecodeJob(body []byte) (Job, error) {
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		return Job{}, errors.Wrap(err, "unmarshal sms job")
	}
	if job.Phone == "" || job.Message == "" {
		return Job{}, errors.New("sms job is missing phone or message")
	}

	return job, nil
}
