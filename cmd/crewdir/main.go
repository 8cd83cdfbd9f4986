package main

import (
	"context"
	"log/slog"
	"os"

	"crewdir/config"
	"crewdir/internal/delivery"
	"crewdir/internal/delivery/http"
	"crewdir/internal/delivery/http/middleware"
	"crewdir/internal/delivery/http/router/handler"
	"crewdir/internal/infra/auth"
	logs "crewdir/internal/infra/log"
	"crewdir/internal/infra/mail"
	"crewdir/internal/infra/persistence/postgres"
	"crewdir/internal/infra/storage"
	"crewdir/internal/usecase/impl"

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
			postgres.NewAgencyRepository,
			postgres.NewTradeRepository,
			postgres.NewRegionRepository,
			postgres.NewReferenceRepository,
			postgres.NewMembershipRepository,
			postgres.NewComplianceRepository,
			postgres.NewProfileEditRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			storage.New,
			mail.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReconcilerService,
			impl.NewAgencyAdminService,
			impl.NewComplianceService,
			impl.NewDirectoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDirectoryHandler,
			handler.NewAgencyAdminHandler,
			handler.NewComplianceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
