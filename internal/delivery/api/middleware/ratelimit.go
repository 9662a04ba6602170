package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"votegate/config"
	deliverycontext "votegate/internal/delivery/context"
	domainerrors "votegate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultRateCapacity       = 10
	defaultRateRefillTokens   = 1
	defaultRateRefillInterval = 6 * time.Second
	defaultRateTTL            = 10 * time.Minute
	defaultRatePrefix         = "votegate:ratelimit"
)

// tokenBucketScript refills and takes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = goredis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
  tokens = capacity
  last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
  local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
  if intervals > 0 then
    tokens = math.min(capacity, tokens + intervals * refill_tokens)
    last_refill = last_refill + intervals * interval_ms
  end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimitMiddleware is a Redis token bucket. Without Redis every request passes.
type RateLimitMiddleware struct {
	rdb    *goredis.Client
	cfg    config.RateLimitConfig
	logger *slog.Logger
	now    func() time.Time
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Redis  *goredis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimitMiddleware applies defaults to the rateLimit config section.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	var cfg config.RateLimitConfig
	if params.Config != nil && params.Config.RateLimit != nil {
		cfg = *params.Config.RateLimit
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultRateCapacity
	}
	if cfg.RefillTokens <= 0 {
		cfg.RefillTokens = defaultRateRefillTokens
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = defaultRateRefillInterval
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultRateTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultRatePrefix
	}

	return &RateLimitMiddleware{
		rdb:    params.Redis,
		cfg:    cfg,
		logger: params.Logger,
		now:    time.Now,
	}
}

// Limit takes one token per request. Redis failures fail open.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.cfg.Enabled || m.rdb == nil {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := m.key(c)

		vals, err := tokenBucketScript.Run(ctx, m.rdb, []string{key},
			m.now().UnixMilli(),
			int64(m.cfg.Capacity),
			int64(m.cfg.RefillTokens),
			m.cfg.RefillInterval.Milliseconds(),
			int64(m.cfg.TTL/time.Second),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(m.cfg.Capacity))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			header.Set("Retry-After", strconv.Itoa(secs))

			return errors.Wrap(domainerrors.ErrTooManyRequests.WithDetails(map[string]any{
				"retry_after": secs,
			}), fmt.Sprintf("rate limit exceeded for %s", key))
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) key(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	route := c.Request().Method + " " + c.Path()

	parts := []string{m.cfg.Prefix}
	switch strings.ToLower(m.cfg.KeyStrategy) {
	case "ip":
		parts = append(parts, "ip", ip)
	case "route":
		parts = append(parts, "route", route)
	default:
		parts = append(parts, "ip", ip, "route", route)
	}

	return strings.Join(parts, ":")
}
