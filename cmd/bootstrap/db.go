package bootstrap

import (
	"context"
	"time"

	"gear-rental/internal/infra/db"
	"gear-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// connectTimeout bounds the dial and first ping, so a missing database fails
// startup instead of hanging it.
const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewPool),
)

func NewPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
