package bootstrap

import (
	"context"

	"gear-rental/internal/pkg/config"
	"gear-rental/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(registerTracing),
)

func registerTracing(lc fx.Lifecycle, cfg config.Config) {
	var shutdown tracing.ShutdownFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = tracing.Setup(ctx, cfg.Tracing)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
