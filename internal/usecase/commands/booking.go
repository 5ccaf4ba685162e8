package commands

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/customer"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

type ReserveInput struct {
	TenantID  uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID
	Customer  CustomerInput
	StartsAt  time.Time
	Notes     string
}

type BookingResult struct {
	BookingID uuid.UUID
	Number    int64
	Code      string
	TenantID  uuid.UUID
	StaffID   uuid.UUID
	StartsAt  time.Time
	Status    booking.Status
}

type BookingCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*BookingResult, error)
	Cancel(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingResult, error)
	Complete(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	cache    SlotCacheInvalidator
	metrics  ReservationMetrics
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, notifier Notifier, cache SlotCacheInvalidator, metrics ReservationMetrics, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		notifier: notifier,
		cache:    cache,
		metrics:  metrics,
		clock:    clk,
	}
}

// Reserve claims one (tenant, staff, instant) slot. Checks run in a fixed
// order: tenant state, monthly quota, request validity, future instant, free slot.
func (uc *bookingCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*BookingResult, error) {
	now := uc.clock.Now()

	var (
		created *booking.Booking
		cust    *customer.Customer
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().TenantByID(ctx, in.TenantID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.Mark(err, ErrTenantInactive)
			}
			return err
		}
		if err := snap.ToDomain().EnsureAcceptsBookings(now); err != nil {
			return errs.Mark(err, ErrTenantInactive)
		}

		plan := snap.Plan.ToDomain()
		if plan.BookingLimit != nil {
			// concurrent reservations on other staff would otherwise all see the same count
			if err := tx.Reads().LockTenant(ctx, in.TenantID); err != nil {
				return err
			}
			count, err := tx.Bookings().CountConfirmedSince(ctx, in.TenantID, monthStart(now))
			if err != nil {
				return err
			}
			if err := plan.AllowsAnotherBooking(count); err != nil {
				return errs.Mark(err, ErrQuotaExceeded)
			}
		}

		cust, err = customer.NewCustomer(in.TenantID, in.Customer.Name, in.Customer.Phone, in.Customer.Email)
		if err != nil {
			return err
		}

		if err := uc.ensureBookable(ctx, tx, in); err != nil {
			return err
		}

		if !in.StartsAt.After(now) {
			return booking.ErrPastInstant
		}

		taken, err := tx.Bookings().ExistsConfirmed(ctx, in.TenantID, in.StaffID, in.StartsAt)
		if err != nil {
			return err
		}
		if taken {
			return errs.Wrapf(ErrSlotConflict, "staff %s at %s", in.StaffID, in.StartsAt.Format(time.RFC3339))
		}

		customerID, err := tx.Customers().Upsert(ctx, cust)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(booking.NewBookingParams{
			TenantID:   in.TenantID,
			StaffID:    in.StaffID,
			ServiceID:  in.ServiceID,
			CustomerID: customerID,
			StartsAt:   in.StartsAt,
			Notes:      in.Notes,
		}, now)
		if err != nil {
			return err
		}

		number, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSlotConflict)
			}
			return err
		}
		created = booking.ReconstructBooking(b.ID(), number, b.TenantID(), b.StaffID(), b.ServiceID(), b.CustomerID(),
			b.StartsAt(), b.Status(), b.Notes(), b.CreatedAt(), b.UpdatedAt())
		return nil
	})
	if err != nil {
		uc.observe(err)
		return nil, classify(err)
	}
	uc.observe(nil)

	uc.afterCommit(ctx, EventBookingConfirmed, created, cust.Name(), cust.Phone().Digits())
	return resultOf(created), nil
}

func (uc *bookingCommandsImpl) ensureBookable(ctx context.Context, tx shared.Tx, in ReserveInput) error {
	staffSnap, err := tx.Reads().StaffForUpdate(ctx, in.TenantID, in.StaffID)
	if err != nil {
		return markMissingAsInvalid(err)
	}
	if err := staffSnap.ToDomain().EnsureBookable(in.TenantID); err != nil {
		return err
	}

	svcSnap, err := tx.Reads().ServiceByID(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return markMissingAsInvalid(err)
	}
	return svcSnap.ToDomain().EnsureBookable(in.TenantID)
}

// A staff member or service outside the tenant is a bad request, not a missing resource.
func markMissingAsInvalid(err error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, ErrValidation)
	}
	return err
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingResult, error) {
	return uc.transition(ctx, tenantID, bookingID, EventBookingCancelled, (*booking.Booking).Cancel)
}

func (uc *bookingCommandsImpl) Complete(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingResult, error) {
	return uc.transition(ctx, tenantID, bookingID, EventBookingCompleted, (*booking.Booking).Complete)
}

func (uc *bookingCommandsImpl) transition(
	ctx context.Context,
	tenantID, bookingID uuid.UUID,
	event Event,
	apply func(*booking.Booking, time.Time) error,
) (*BookingResult, error) {
	now := uc.clock.Now()

	var (
		updated *booking.Booking
		snap    *shared.BookingSnapshot
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.Bookings().LockByID(ctx, tenantID, bookingID)
		if err != nil {
			return shared.NotFoundOr(err, ErrBookingNotFound)
		}
		b := snap.ToDomain()
		if err := apply(b, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return shared.NotFoundOr(err, ErrBookingNotFound)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	uc.afterCommit(ctx, event, updated, snap.CustomerName, snap.CustomerPhone)
	return resultOf(updated), nil
}

// afterCommit is best-effort and never fails the command.
func (uc *bookingCommandsImpl) afterCommit(ctx context.Context, event Event, b *booking.Booking, customerName, customerPhone string) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, b.TenantID(), b.StaffID(), schedule.Day(b.StartsAt()))
	}
	if uc.notifier == nil {
		return
	}
	notice := BookingNotice{
		BookingID:     b.ID(),
		Code:          booking.Code(b.Number()),
		TenantID:      b.TenantID(),
		StaffID:       b.StaffID(),
		ServiceID:     b.ServiceID(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		StartsAt:      b.StartsAt(),
		Status:        b.Status().String(),
	}
	if !uc.notifier.Notify(ctx, event, notice) {
		slog.Warn("booking notification dropped",
			"event", string(event),
			"booking_id", b.ID().String())
	}
}

func (uc *bookingCommandsImpl) observe(err error) {
	if uc.metrics == nil {
		return
	}
	switch {
	case err == nil:
		uc.metrics.ObserveReservation(OutcomeConfirmed)
	case errs.Is(err, ErrSlotConflict):
		uc.metrics.ObserveReservation(OutcomeConflict)
	case errs.Is(err, ErrValidation), errs.Is(err, ErrTenantInactive), errs.Is(err, ErrQuotaExceeded):
		uc.metrics.ObserveReservation(OutcomeRejected)
	default:
		uc.metrics.ObserveReservation(OutcomeError)
	}
}

func resultOf(b *booking.Booking) *BookingResult {
	return &BookingResult{
		BookingID: b.ID(),
		Number:    b.Number(),
		Code:      booking.Code(b.Number()),
		TenantID:  b.TenantID(),
		StaffID:   b.StaffID(),
		StartsAt:  b.StartsAt(),
		Status:    b.Status(),
	}
}

// monthStart is midnight UTC on the first day of now's month.
func monthStart(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
