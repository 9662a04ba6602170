package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"votegate/config"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishTimeout bounds the wait for the server ack; the vote itself is already committed.
const publishTimeout = 10 * time.Second

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic is missing so a
// misconfigured deployment never starts accepting ballots.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	// one vote, one confirmation: do not hold messages back for batching
	publisher.PublishSettings.CountThreshold = 1

	logger.Info("Vote events go to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishVoteCast(ctx context.Context, event *service.VoteCastEvent) error {
	data, attributes, err := encodeVoteCast(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.TransactionID, p.topic)
	}

	p.logger.Debug("Vote event acknowledged",
		slog.String(constants.AttrTransactionID, event.TransactionID),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
