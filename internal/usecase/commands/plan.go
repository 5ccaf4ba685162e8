package commands

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/shared"
)

type PlanCommands interface {
	// SyncCatalog upserts every plan of the catalog by name and returns how many were written.
	SyncCatalog(ctx context.Context, catalog config.PlanCatalog) (int, error)
}

type planCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPlanCommands(uow shared.UnitOfWork) PlanCommands {
	return &planCommandsImpl{uow: uow}
}

func (uc *planCommandsImpl) SyncCatalog(ctx context.Context, catalog config.PlanCatalog) (int, error) {
	written := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		written = 0
		for _, entry := range catalog.Plans {
			if _, err := tx.Plans().UpsertByName(ctx, tenant.Plan{
				Name:         entry.Name,
				MonthlyPrice: entry.Price(),
				StaffLimit:   entry.StaffLimit,
				BookingLimit: entry.BookingLimit,
				Features:     entry.Features,
			}); err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}
	slog.Info("plan catalog synchronized", "plans", written)
	return written, nil
}
