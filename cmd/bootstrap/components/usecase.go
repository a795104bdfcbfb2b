package components

import (
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/config"
	"gear-rental/internal/usecase"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/shared"
	"gear-rental/internal/usecase/status"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(uow shared.UnitOfWork, clk clock.Clock, cfg config.RentalConfig) status.Engine {
		return status.NewEngine(uow, clk, cfg.Location())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewEquipmentCommands,
		commands.NewCustomerCommands,
		commands.NewRentalCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.RentalConfig) commands.VerificationCommands {
			return commands.NewVerificationCommands(uow, clk, cfg.MaxSignatureBytes)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEquipmentQueries,
		queries.NewCustomerQueries,
		queries.NewRentalQueries,
		queries.NewVerificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
