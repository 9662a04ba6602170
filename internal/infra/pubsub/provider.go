// Package pubsub publishes vote-cast events for the notifier.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"votegate/config"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when Pub/Sub is not configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishVoteCast(_ context.Context, event *service.VoteCastEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String(constants.AttrTransactionID, event.TransactionID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport from pubsub.provider. An empty
// provider keeps the API usable without the notifier; confirmations are then skipped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, vote confirmations disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %q", cfg.Provider)
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing EventPublisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("localEndpoint is required")
		}
		logger.Info("Vote events go straight to the notifier", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("projectId and topicId are required")
		}

		return NewGooglePubSubPublisher(ctx, cfg, logger)

	default:
		return nil, errors.New("unknown provider")
	}
}

// encodeVoteCast serializes the event and derives the message attributes used for routing and tracing
func encodeVoteCast(event *service.VoteCastEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType:     constants.EventTypeVoteCast,
		constants.AttrTransactionID: event.TransactionID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
