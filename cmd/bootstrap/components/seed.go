package components

import (
	"context"

	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// SeedModule syncs the plan catalog before the server accepts registrations.
var SeedModule = fx.Module("seed",
	fx.Invoke(SyncPlans),
)

func SyncPlans(lc fx.Lifecycle, cfg config.Config, plans commands.PlanCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			catalog, err := config.LoadPlanCatalog(cfg.Booking.PlanCatalogPath)
			if err != nil {
				return err
			}
			_, err = plans.SyncCatalog(ctx, catalog)
			return err
		},
	})
}
