package components

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/infra/cache"
	"barbershop-booking/internal/infra/metrics"
	"barbershop-booking/internal/infra/notify"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewMetrics,
		func(reg *metrics.Registry) commands.ReservationMetrics { return reg },
		fx.Annotate(
			NewSlotCache,
			fx.As(new(queries.BookedSlotCache)),
			fx.As(new(commands.SlotCacheInvalidator)),
		),
		NewNotifier,
	),
)

func NewMetrics(cfg config.Config) *metrics.Registry {
	return metrics.New(cfg.Metrics)
}

// NewSlotCache returns the Redis cache when REDIS_ADDR is set and reachable.
// An unreachable Redis degrades to reading every request from Postgres.
func NewSlotCache(lc fx.Lifecycle, cfg config.Config, reg *metrics.Registry, logger *slog.Logger) cache.SlotCache {
	if !cfg.Redis.Enabled() {
		return cache.NopSlotCache{}
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, slot cache disabled", "error", err.Error())
		return cache.NopSlotCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("slot cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SlotCacheTTL)
	return cache.NewRedisSlotCache(client, cfg.Redis.SlotCacheTTL, reg)
}

// NewNotifier publishes to RabbitMQ when AMQP_URL is set and logs otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, reg *metrics.Registry) commands.Notifier {
	if !cfg.AMQP.Enabled() {
		return notify.NewLogNotifier(reg)
	}

	n := notify.NewAMQPNotifier(cfg.AMQP, reg)
	lc.Append(fx.Hook{
		// the buffer drains within the fx stop timeout
		OnStop: n.Close,
	})
	return n
}
