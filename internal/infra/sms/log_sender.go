package sms

import (
	"context"
	"log/slog"

	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/service"
	"votegate/internal/util"
)

// logSender simulates delivery for development by writing the message to the log
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates the development sender
func NewLogSender(logger *slog.Logger) service.SMSSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, phone, message string) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[LogSMS] Message simulated",
		slog.String("phone", util.MaskPhone(phone)),
		slog.String("message", message),
	)

	return nil
}
