package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"votegate/config"
	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"
	"votegate/internal/infra/pubsub"
	mockService "votegate/internal/mocks/service"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTransactionID = "VT-20251012090000-ABCDEF12"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.VoteCastEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var push pubsub.PushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = attributes
	push.Message.MessageID = "m-1"

	body, err := json.Marshal(push)
	require.NoError(t, err)

	return string(body)
}

func voteEvent() *service.VoteCastEvent {
	return &service.VoteCastEvent{
		RequestID:     "req-1",
		TransactionID: testTransactionID,
		VoterID:       "7f8e3c1a-0000-0000-0000-000000000001",
		Phone:         "+237600000000",
		CastAt:        time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC),
	}
}

func postPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_SendsConfirmation(t *testing.T) {
	sms := mockService.NewMockSMSSender(t)
	sms.EXPECT().Send(mock.Anything, "+237600000000", mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, testTransactionID) && strings.Contains(msg, "2025-10-12 09:00")
	})).Return(nil)

	h := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: discardLogger(), SMS: sms})

	rec := postPush(h, pushBody(t, voteEvent(), map[string]string{constants.AttrEventType: constants.EventTypeVoteCast}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SMSFailureAsksForRetry(t *testing.T) {
	sms := mockService.NewMockSMSSender(t)
	sms.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway down"))

	h := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: discardLogger(), SMS: sms})

	rec := postPush(h, pushBody(t, voteEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DropsMalformedMessages(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: discardLogger(),
		SMS:    mockService.NewMockSMSSender(t),
	})

	t.Run("not json", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, postPush(h, `{"message":`).Code)
	})

	t.Run("not base64", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, postPush(h, `{"message":{"data":"%%%"}}`).Code)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		event := voteEvent()
		event.TransactionID = ""

		assert.Equal(t, http.StatusBadRequest, postPush(h, pushBody(t, event, nil)).Code)
	})

	t.Run("other event types are acknowledged", func(t *testing.T) {
		rec := postPush(h, pushBody(t, voteEvent(), map[string]string{constants.AttrEventType: "voter.registered"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_SkipsRedelivery(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(dedupePrefix+testTransactionID, 1, dedupeTTL).SetVal(false)

	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: discardLogger(),
		SMS:    mockService.NewMockSMSSender(t),
		Redis:  rdb,
	})

	rec := postPush(h, pushBody(t, voteEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPushHandler_ReleasesDedupeKeyOnFailure(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(dedupePrefix+testTransactionID, 1, dedupeTTL).SetVal(true)
	redisMock.ExpectDel(dedupePrefix + testTransactionID).SetVal(1)

	sms := mockService.NewMockSMSSender(t)
	sms.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway down"))

	h := NewPushHandler(PushHandlerParams{Config: &config.Config{}, Logger: discardLogger(), SMS: sms, Redis: rdb})

	rec := postPush(h, pushBody(t, voteEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPushHandler_VerifiesTokenOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger(), SMS: mockService.NewMockSMSSender(t)})
	require.NotNil(t, h.verify)

	rec := postPush(h, pushBody(t, voteEvent(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
