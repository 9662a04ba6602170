// Package smsqueue drains SMS jobs queued by the API and delivers them.
package smsqueue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"votegate/config"
	"votegate/internal/delivery"
	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"
	"votegate/internal/infra/sms"
	"votegate/internal/util"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	defaultPrefetch = 10
	minRetryDelay   = time.Second
	maxRetryDelay   = 30 * time.Second
	// jobs older than this are dropped, the code inside has expired anyway
	maxJobAge = 10 * time.Minute
)

// Consumer is a delivery.Delivery reading the SMS job queue.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	sender   service.SMSSender
	logger   *slog.Logger
	now      func() time.Time

	// connect runs one broker session and calls ready once it is consuming.
	connect       func(ctx context.Context, ready func()) error
	minRetryDelay time.Duration
	maxRetryDelay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// ConsumerParams holds dependencies for the Consumer, injected by Fx.
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Sender service.SMSSender
	Logger *slog.Logger
}

// NewConsumer reads sms.rabbitmq. Unless sms.provider is rabbitmq, Serve returns at once.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &Consumer{
		sender:   params.Sender,
		logger:   params.Logger,
		prefetch: defaultPrefetch,
		now:      time.Now,

		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
	c.connect = c.consume

	if cfg := params.Config.SMS; cfg != nil && cfg.Provider == constants.SMSProviderRabbitMQ {
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" {
			return nil, errors.New("rabbitmq url is required for the sms queue consumer")
		}
		c.url = cfg.RabbitMQ.URL
		c.queue = cfg.RabbitMQ.Queue
		if cfg.RabbitMQ.Prefetch > 0 {
			c.prefetch = cfg.RabbitMQ.Prefetch
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.stop()

			return nil
		},
	})

	return c, nil
}

// Serve consumes until stopped, reconnecting with exponential backoff.
func (c *Consumer) Serve(ctx context.Context) error {
	if c.url == "" {
		c.logger.Info("[Notifier] SMS queue disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = c.minRetryDelay
	retry.MaxInterval = c.maxRetryDelay
	retry.MaxElapsedTime = 0

	err := backoff.RetryNotify(
		func() error {
			err := c.connect(ctx, retry.Reset)
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}

			return err
		},
		backoff.WithContext(retry, ctx),
		func(err error, wait time.Duration) {
			c.logger.Warn("[Notifier] SMS queue connection lost", slog.Any("error", err), slog.Duration("retry_in", wait))
		},
	)
	if ctx.Err() != nil {
		return nil
	}

	return err
}

func (c *Consumer) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
}

// consume runs one connection until it drops or ctx ends.
func (c *Consumer) consume(ctx context.Context, ready func()) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "dial rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", c.queue)
	}
	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "set qos")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "start consuming")
	}

	c.logger.Info("[Notifier] Consuming SMS queue", slog.String("queue", c.queue), slog.Int("prefetch", c.prefetch))
	ready()

	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-closed:
			return errors.Errorf("connection closed: %v", amqpErr)
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.process(ctx, d)
		}
	}
}

// process acks delivered or unusable jobs and requeues send failures once.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	job, err := sms.DecodeJob(d.Body)
	if err != nil {
		c.logger.Error("[Notifier] Dropping malformed SMS job", slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	logger := c.logger
	if job.RequestID != "" {
		logger = logger.With(slog.String("request_id", job.RequestID))
		ctx = deliverycontext.WithRequestID(ctx, job.RequestID)
	}
	ctx = deliverycontext.WithLogger(ctx, logger)

	if !job.EnqueuedAt.IsZero() && c.now().Sub(job.EnqueuedAt) > maxJobAge {
		logger.Warn("[Notifier] Dropping stale SMS job", slog.Time("enqueued_at", job.EnqueuedAt))
		_ = d.Ack(false)

		return
	}

	if err := c.sender.Send(ctx, job.Phone, job.Message); err != nil {
		// a redelivered job that fails again is dropped
		requeue := !d.Redelivered
		logger.Error("[Notifier] Failed to send SMS",
			slog.Any("error", err),
			slog.String("phone", util.MaskPhone(job.Phone)),
			slog.Bool("requeue", requeue),
		)
		_ = d.Nack(false, requeue)

		return
	}

	_ = d.Ack(false)
}
