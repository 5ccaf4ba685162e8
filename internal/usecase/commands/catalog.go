package commands

import (
	"context"

	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StaffInput struct {
	Name       string
	Specialty  string
	Commission *decimal.Decimal
}

type ServiceInput struct {
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	Description     string
}

type CatalogCommands interface {
	CreateStaff(ctx context.Context, tenantID uuid.UUID, in StaffInput) (uuid.UUID, error)
	DeactivateStaff(ctx context.Context, tenantID, staffID uuid.UUID) error
	CreateService(ctx context.Context, tenantID uuid.UUID, in ServiceInput) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

// CreateStaff enforces the plan's staff limit against currently active members.
func (uc *catalogCommandsImpl) CreateStaff(ctx context.Context, tenantID uuid.UUID, in StaffInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TenantByID(ctx, tenantID)
		if err != nil {
			return err
		}
		active, err := tx.Reads().CountActiveStaff(ctx, tenantID)
		if err != nil {
			return err
		}
		if err := snap.Plan.ToDomain().AllowsAnotherStaff(active); err != nil {
			return errs.Mark(err, ErrQuotaExceeded)
		}

		m, err := staff.NewMember(tenantID, in.Name, in.Specialty, in.Commission, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Staff().Create(ctx, m); err != nil {
			return err
		}
		id = m.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, classify(err)
	}
	return id, nil
}

// DeactivateStaff keeps existing bookings; the member just stops accepting new ones.
func (uc *catalogCommandsImpl) DeactivateStaff(ctx context.Context, tenantID, staffID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().StaffForUpdate(ctx, tenantID, staffID)
		if err != nil {
			return err
		}
		m := snap.ToDomain()
		m.Deactivate()
		if err := tx.Staff().Update(ctx, m); err != nil {
			return shared.NotFoundOr(err, ErrStaffNotFound)
		}
		return nil
	})
	return classify(err)
}

func (uc *catalogCommandsImpl) CreateService(ctx context.Context, tenantID uuid.UUID, in ServiceInput) (uuid.UUID, error) {
	svc, err := catalog.NewService(tenantID, in.Name, in.DurationMinutes, in.Price, in.Description)
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().TenantByID(ctx, tenantID); err != nil {
			return err
		}
		return tx.Services().Create(ctx, svc)
	})
	if err != nil {
		return uuid.Nil, classify(err)
	}
	return svc.ID(), nil
}
