// Package handler holds the notifier's HTTP handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"
	"votegate/internal/infra/pubsub"
	"votegate/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	dedupePrefix = "votegate:notifier:confirmed:"
	dedupeTTL    = 24 * time.Hour
)

// retryableError marks failures Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns vote-cast events into confirmation SMS
type PushHandler struct {
	verify func(*http.Request) error
	sms    service.SMSSender
	rdb    *goredis.Client
	logger *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SMS    service.SMSSender
	Redis  *goredis.Client `optional:"true"`
}

// NewPushHandler verifies Google push tokens outside development
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		sms:    params.SMS,
		rdb:    params.Redis,
		logger: params.Logger,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles POST /push. 503 asks Pub/Sub to retry; malformed messages are dropped.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push pubsub.PushMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Notifier] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := push.Message.Attributes[constants.AttrEventType]; eventType != "" && eventType != constants.EventTypeVoteCast {
		h.logger.Info("[Notifier] Ignoring event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		h.logger.Error("[Notifier] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.VoteCastEvent
	if err := json.Unmarshal(data, &event); err != nil || event.TransactionID == "" || event.Phone == "" {
		h.logger.Error("[Notifier] Invalid vote event", slog.Any("error", err), slog.String("message_id", push.Message.MessageID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &push, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.confirm(ctx, &event); err != nil {
		reqLogger.Error("[Notifier] Failed to confirm vote",
			slog.String(constants.AttrTransactionID, event.TransactionID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the inbound header
func (h *PushHandler) extractRequestID(ctx context.Context, push *pubsub.PushMessage, event *service.VoteCastEvent) string {
	if requestID := push.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// confirm sends one SMS per transaction. Redeliveries are skipped when Redis is available.
func (h *PushHandler) confirm(ctx context.Context, event *service.VoteCastEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	key := dedupePrefix + event.TransactionID

	if h.rdb != nil {
		fresh, err := h.rdb.SetNX(ctx, key, 1, dedupeTTL).Result()
		if err != nil {
			logger.Warn("[Notifier] Dedupe check failed, sending anyway", slog.Any("error", err))
		} else if !fresh {
			logger.Info("[Notifier] Confirmation already sent", slog.String(constants.AttrTransactionID, event.TransactionID))

			return nil
		}
	}

	if err := h.sms.Send(ctx, event.Phone, confirmationMessage(event)); err != nil {
		if h.rdb != nil {
			_ = h.rdb.Del(ctx, key).Err()
		}

		return newRetryableError(errors.Wrap(err, "send confirmation sms"))
	}

	logger.Info("[Notifier] Vote confirmation sent",
		slog.String(constants.AttrTransactionID, event.TransactionID),
		slog.String("phone", util.MaskPhone(event.Phone)),
	)

	return nil
}

func confirmationMessage(event *service.VoteCastEvent) string {
	return fmt.Sprintf("Your vote was recorded at %s UTC. Receipt: %s",
		event.CastAt.UTC().Format("2006-01-02 15:04"), event.TransactionID)
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
