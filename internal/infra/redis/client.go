// Package redis builds the shared go-redis client.
package redis

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"votegate/config"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a connected client, or nil when Redis is not configured or unreachable.
// Consumers treat nil as "degrade to in-process behaviour".
func New(params Params) *goredis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process locks and no rate limiting")

		return nil
	}

	opts := &goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		params.Logger.Warn("Redis unreachable, degrading", slog.String("addr", cfg.Addr), slog.Any("error", err))
		_ = client.Close()

		return nil
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
