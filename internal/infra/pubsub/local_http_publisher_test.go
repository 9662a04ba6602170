package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"votegate/internal/domain/constants"
	"votegate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.VoteCastEvent{
		RequestID:     "req-1",
		TransactionID: "VT-20251012140509-3F2A9C1E",
		VoterID:       "voter-1",
		Phone:         "+237600000000",
		CastAt:        time.Date(2025, 10, 12, 14, 5, 9, 0, time.UTC),
	}

	require.NoError(t, pub.PublishVoteCast(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventTypeVoteCast, got.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, event.TransactionID, got.Message.Attributes[constants.AttrTransactionID])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.VoteCastEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Phone, decoded.Phone)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := pub.PublishVoteCast(context.Background(), &service.VoteCastEvent{TransactionID: "VT-1"})
	assert.ErrorContains(t, err, "503")
}
