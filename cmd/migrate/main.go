// Command migrate creates the schema and seeds the candidate catalog.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"votegate/config"
	"votegate/internal/domain/entity"
	"votegate/internal/domain/lifecycle"
	logs "votegate/internal/infra/log"
	"votegate/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 2 * time.Minute

type migrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(register),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to close connections", slog.Any("error", err))
	}
}

// register runs the migration as a start hook so the pool is closed by the stop hooks.
func register(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrate(ctx, params)
		},
	})
}

func migrate(ctx context.Context, params migrateParams) error {
	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}
	params.Logger.Info("Schema migrated")

	added, err := postgres.NewCandidateRepository(params.DB).SeedCandidates(ctx, candidatesFromConfig(params.Config))
	if err != nil {
		return err
	}
	params.Logger.Info("Candidates seeded", slog.Int("added", added))

	return nil
}

func candidatesFromConfig(cfg *config.Config) []*entity.Candidate {
	if cfg.Election == nil {
		return nil
	}

	candidates := make([]*entity.Candidate, 0, len(cfg.Election.Candidates))
	for _, seed := range cfg.Election.Candidates {
		candidates = append(candidates, &entity.Candidate{
			Name:        seed.Name,
			Party:       seed.Party,
			Description: seed.Description,
		})
	}

	return candidates
}
