package main

import (
	"context"
	"log/slog"
	"os"

	"schoolhub/config"
	"schoolhub/internal/delivery"
	"schoolhub/internal/delivery/api"
	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/router/handler"
	"schoolhub/internal/domain/identity"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/infra/auth"
	logs "schoolhub/internal/infra/log"
	"schoolhub/internal/infra/persistence/postgres"
	"schoolhub/internal/infra/pubsub"
	"schoolhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityDecoder,
			pubsub.NewEventPublisher,
		),
	)
}

// newIdentityDecoder applies the configured century cutoff to the identity decoder.
func newIdentityDecoder(cfg *config.Config) service.IdentityDecoder {
	return identity.NewDecoder(identity.WithCenturyCutoff(cfg.CenturyCutoff()))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewStatsHandler,
			handler.NewTestHandler,
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
				os.Exit(1)
			}
		}()
	}
}
