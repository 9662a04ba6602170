// Package sms delivers one-time codes and receipts to voters' phones.
package sms

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"votegate/config"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"go.uber.org/fx"
)

// Job is a queued SMS waiting for the notifier
type Job struct {
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	RequestID  string    `json:"request_id,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Params holds dependencies for the SMS sender, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the sender configured under sms.provider. The API process uses it; with the
// rabbitmq provider it only enqueues jobs.
func New(params Params) (service.SMSSender, error) {
	cfg := params.Config.SMS
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.SMSProviderLog {
		params.Logger.Info("SMS provider not configured, logging messages instead")

		return NewLogSender(params.Logger), nil
	}

	switch cfg.Provider {
	case constants.SMSProviderTwilio:
		return newTwilioFromConfig(cfg.Twilio)

	case constants.SMSProviderRabbitMQ:
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" {
			return nil, errors.New("rabbitmq url is required for rabbitmq sms provider")
		}

		sender := NewQueueSender(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return sender.Close()
			},
		})

		return sender, nil

	default:
		return nil, errors.Errorf("unknown sms provider: %s", cfg.Provider)
	}
}

// NewDirect returns the sender the notifier delivers queued jobs through: Twilio when
// credentials are present, the log sender otherwise.
func NewDirect(params Params) (service.SMSSender, error) {
	cfg := params.Config.SMS
	if cfg == nil || cfg.Twilio == nil || cfg.Twilio.AccountSID == "" {
		return NewLogSender(params.Logger), nil
	}

	return newTwilioFromConfig(cfg.Twilio)
}

func newTwilioFromConfig(cfg *config.TwilioConfig) (service.SMSSender, error) {
	if cfg == nil || cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, errors.New("twilio accountSid, authToken and fromNumber are required")
	}

	return NewTwilioSender(cfg, &http.Client{Timeout: 10 * time.Second})
}
