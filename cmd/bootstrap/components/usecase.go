package components

import (
	"booking-billing/internal/pkg/clock"
	"booking-billing/internal/pkg/config"
	"booking-billing/internal/usecase/commands"
	"booking-billing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BillingConfig { return cfg.Billing },
	func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStatementQueries,
		queries.NewBillingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStatementUseCase,
		commands.NewEnforcementUseCase,
		commands.NewResourceUseCase,
	),
)
