package main

import (
	"context"
	"log/slog"
	"os"

	"votegate/config"
	"votegate/internal/delivery"
	"votegate/internal/delivery/api"
	"votegate/internal/delivery/api/middleware"
	"votegate/internal/delivery/api/router/handler"
	"votegate/internal/infra/auth"
	"votegate/internal/infra/face"
	"votegate/internal/infra/lock"
	logs "votegate/internal/infra/log"
	"votegate/internal/infra/persistence/postgres"
	"votegate/internal/infra/pubsub"
	"votegate/internal/infra/qrcode"
	"votegate/internal/infra/redis"
	"votegate/internal/infra/sms"
	"votegate/internal/infra/storage"
	"votegate/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			storage.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			face.NewDetector,
			face.NewProcessor,
			face.NewLBPH,
			lock.New,
			sms.New,
			pubsub.NewEventPublisher,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOTPService,
			impl.NewAuthService,
			impl.NewFaceService,
			impl.NewVoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFaceHandler,
			handler.NewVoteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
