package bootstrap

import (
	"gear-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.RentalConfig { return cfg.Rental },
	),
)
