// Command notifier delivers queued SMS jobs and vote confirmations.
package main

import (
	"context"
	"log/slog"
	"os"

	"votegate/config"
	"votegate/internal/delivery"
	"votegate/internal/delivery/worker"
	"votegate/internal/delivery/worker/handler"
	"votegate/internal/delivery/worker/smsqueue"
	logs "votegate/internal/infra/log"
	"votegate/internal/infra/redis"
	"votegate/internal/infra/sms"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		redis.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			// the notifier talks to the gateway itself; sms.New would re-enqueue
			sms.NewDirect,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				smsqueue.NewConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start delivery", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
