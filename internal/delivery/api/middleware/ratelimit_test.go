package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"votegate/config"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLimitedEcho(t *testing.T, m *RateLimitMiddleware) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, m.Limit)

	return e
}

func doLogin(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.7:5000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit_AllowsAndBlocks(t *testing.T) {
	db, mock := redismock.NewClientMock()
	now := time.UnixMilli(1_760_000_000_000)

	m := NewRateLimitMiddleware(RateLimitParams{
		Redis:  db,
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Capacity: 2, RefillInterval: 30 * time.Second, KeyStrategy: "ip"}},
		Logger: discardLogger(),
	})
	m.now = func() time.Time { return now }
	e := newLimitedEcho(t, m)

	key := "votegate:ratelimit:ip:10.0.0.7"
	args := []any{now.UnixMilli(), int64(2), int64(1), int64(30000), int64(600)}
	mock.ExpectEvalSha(tokenBucketScript.Hash(), []string{key}, args...).SetVal([]any{int64(1), int64(1), int64(0)})
	mock.ExpectEvalSha(tokenBucketScript.Hash(), []string{key}, args...).SetVal([]any{int64(0), int64(0), int64(2500)})

	rec := doLogin(e)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doLogin(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"RATE_LIMITED"`)
	assert.Contains(t, rec.Body.String(), `"retry_after":3`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_FailsOpen(t *testing.T) {
	db, mock := redismock.NewClientMock()
	now := time.UnixMilli(1_760_000_000_000)

	m := NewRateLimitMiddleware(RateLimitParams{
		Redis:  db,
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}},
		Logger: discardLogger(),
	})
	m.now = func() time.Time { return now }
	e := newLimitedEcho(t, m)

	key := "votegate:ratelimit:ip:10.0.0.7:route:POST /auth/login"
	mock.ExpectEvalSha(tokenBucketScript.Hash(), []string{key}, now.UnixMilli(), int64(10), int64(1), int64(6000), int64(600)).
		SetErr(errors.New("connection refused"))

	rec := doLogin(e)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	m := NewRateLimitMiddleware(RateLimitParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}},
		Logger: discardLogger(),
	})
	e := newLimitedEcho(t, m)

	for range 20 {
		require.Equal(t, http.StatusNoContent, doLogin(e).Code)
	}
}
