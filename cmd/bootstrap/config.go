package bootstrap

import (
	"log/slog"

	"barbershop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logIntegrations),
)

// logIntegrations reports which optional backends this process will talk to.
func logIntegrations(cfg config.Config, logger *slog.Logger) {
	logger.Info("integrations",
		"redis", cfg.Redis.Enabled(),
		"amqp", cfg.AMQP.Enabled(),
		"metrics", cfg.Metrics.Enabled,
		"trial_days", cfg.Booking.TrialDays,
		"next_slot_horizon_days", cfg.Booking.NextSlotHorizonDays,
	)
}
