package queries

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Slots(ctx context.Context, tenantID, staffID uuid.UUID, date time.Time) (*SlotsView, error)
	NextSlot(ctx context.Context, tenantID, staffID uuid.UUID, from time.Time) (*NextSlotView, error)
}

type AvailabilityReadStore interface {
	// PolicyFor returns the tenant's hours, or the default policy with configured=false.
	PolicyFor(ctx context.Context, tenantID uuid.UUID) (schedule.Policy, bool, error)
	StaffByID(ctx context.Context, tenantID, staffID uuid.UUID) (*StaffView, error)
	// BookedInstants lists confirmed starts for one staff member in [from, to).
	BookedInstants(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]time.Time, error)
}

// BookedSlotCache holds per-day booked instants. Misses and failures fall back to the store.
// The generation from a miss is passed to Put so fills that raced a booking write are dropped.
type BookedSlotCache interface {
	Get(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time) ([]time.Time, int64, bool)
	Put(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time, gen int64, booked []time.Time)
}

type availabilityQueriesImpl struct {
	tenants     TenantReadStore
	store       AvailabilityReadStore
	cache       BookedSlotCache
	clock       clock.Clock
	horizonDays int
}

func NewAvailabilityQueries(tenants TenantReadStore, store AvailabilityReadStore, cache BookedSlotCache, clk clock.Clock, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		tenants:     tenants,
		store:       store,
		cache:       cache,
		clock:       clk,
		horizonDays: cfg.Booking.NextSlotHorizonDays,
	}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, tenantID, staffID uuid.UUID, date time.Time) (*SlotsView, error) {
	policy, configured, err := q.prepare(ctx, tenantID, staffID)
	if err != nil {
		return nil, err
	}

	day := schedule.Day(date)
	booked, err := q.booked(ctx, tenantID, staffID, day)
	if err != nil {
		return nil, err
	}
	free := schedule.FilterAvailable(schedule.GenerateCandidates(policy, day, q.clock.Now()), booked)

	return &SlotsView{
		TenantID:         tenantID,
		StaffID:          staffID,
		Date:             day,
		Slots:            free,
		PolicyConfigured: configured,
		OpensAt:          policy.OpensAt().String(),
		ClosesAt:         policy.ClosesAt().String(),
		IntervalMinutes:  policy.IntervalMinutes(),
	}, nil
}

func (q *availabilityQueriesImpl) NextSlot(ctx context.Context, tenantID, staffID uuid.UUID, from time.Time) (*NextSlotView, error) {
	policy, configured, err := q.prepare(ctx, tenantID, staffID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	if from.IsZero() {
		from = now
	}
	lookup := func(day time.Time) ([]time.Time, error) {
		return q.booked(ctx, tenantID, staffID, day)
	}
	slot, found, err := schedule.NextAvailable(policy, from, now, q.horizonDays, lookup)
	if err != nil {
		return nil, err
	}

	view := &NextSlotView{StaffID: staffID, PolicyConfigured: configured, HorizonDays: q.horizonDays}
	if found {
		view.Slot = &slot
	}
	return view, nil
}

func (q *availabilityQueriesImpl) prepare(ctx context.Context, tenantID, staffID uuid.UUID) (schedule.Policy, bool, error) {
	t, err := q.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return schedule.Policy{}, false, shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	if err := ensureOpen(t, q.clock.Now()); err != nil {
		return schedule.Policy{}, false, err
	}

	member, err := q.store.StaffByID(ctx, tenantID, staffID)
	if err != nil {
		return schedule.Policy{}, false, shared.NotFoundOr(err, shared.ErrStaffNotFound)
	}
	if !member.Active {
		return schedule.Policy{}, false, staff.ErrStaffInactive
	}

	policy, configured, err := q.store.PolicyFor(ctx, tenantID)
	if err != nil {
		return schedule.Policy{}, false, err
	}
	if !configured {
		slog.Warn("operating hours not configured, using default policy",
			"tenant_id", tenantID.String(),
			"opens_at", policy.OpensAt().String(),
			"closes_at", policy.ClosesAt().String())
	}
	return policy, configured, nil
}

func (q *availabilityQueriesImpl) booked(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time) ([]time.Time, error) {
	cached, gen, ok := q.cache.Get(ctx, tenantID, staffID, day)
	if ok {
		return cached, nil
	}
	booked, err := q.store.BookedInstants(ctx, tenantID, staffID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	q.cache.Put(ctx, tenantID, staffID, day, gen, booked)
	return booked, nil
}
