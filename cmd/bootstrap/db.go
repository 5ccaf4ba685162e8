package bootstrap

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("database pool ready",
				"host", cfg.DB.Host,
				"max_conns", pool.Config().MaxConns,
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool stats",
				"acquired", stat.AcquiredConns(),
				"idle", stat.IdleConns(),
				"acquire_count", stat.AcquireCount(),
			)
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
