package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "nope")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func request(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newEcho(&bytes.Buffer{}, false)

	t.Run("keeps a well formed id", func(t *testing.T) {
		rec := request(e, "/ok", "client-123")

		assert.Equal(t, "client-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-123", rec.Body.String())
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		rec := request(e, "/ok", "bad id\twith spaces")

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet on success outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		rec := request(newEcho(buf, false), "/ok", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("logs failures with the final status", func(t *testing.T) {
		buf := &bytes.Buffer{}
		rec := request(newEcho(buf, false), "/fail", "req-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, buf.String(), `"status":409`)
		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("debug logs every request except health", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newEcho(buf, true)

		request(e, "/health", "")
		assert.Empty(t, buf.String())

		request(e, "/ok", "")
		assert.Contains(t, buf.String(), `"route":"/ok"`)
	})
}
