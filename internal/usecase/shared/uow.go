package shared

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/domain/customer"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/domain/tenant"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Tenants() TenantRepository
	Plans() PlanRepository
	Staff() StaffRepository
	Services() ServiceRepository
	Customers() CustomerRepository
	Bookings() BookingRepository
	Policies() PolicyRepository
	Reads() CommandReads
}

// CommandReads are the lookups write paths need. Every staff, service and
// booking lookup is scoped by tenant.
type CommandReads interface {
	TenantByID(ctx context.Context, id uuid.UUID) (*TenantSnapshot, error)
	// LockTenant serializes quota checks of one tenant until the transaction ends.
	LockTenant(ctx context.Context, id uuid.UUID) error
	EmailTaken(ctx context.Context, email string) (bool, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)

	PlanByID(ctx context.Context, id uuid.UUID) (*PlanSnapshot, error)
	CheapestPlan(ctx context.Context) (*PlanSnapshot, error)

	// StaffForUpdate locks the staff row until the surrounding transaction ends,
	// serializing reservations against the same barber.
	StaffForUpdate(ctx context.Context, tenantID, staffID uuid.UUID) (*StaffSnapshot, error)
	ServiceByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*ServiceSnapshot, error)
	CountActiveStaff(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type TenantRepository interface {
	Create(ctx context.Context, t *tenant.Tenant) error
	// Update persists the mutable lifecycle fields: active, expiry and plan.
	Update(ctx context.Context, t *tenant.Tenant) error
}

type PlanRepository interface {
	UpsertByName(ctx context.Context, p tenant.Plan) (uuid.UUID, error)
}

type StaffRepository interface {
	Create(ctx context.Context, m *staff.Member) error
	Update(ctx context.Context, m *staff.Member) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
}

type CustomerRepository interface {
	// Upsert finds the customer by (tenant, phone) or creates it, refreshing name and email.
	Upsert(ctx context.Context, c *customer.Customer) (uuid.UUID, error)
}

type BookingRepository interface {
	// Create inserts a confirmed booking and returns its sequence number.
	// A second confirmed booking for the same (tenant, staff, instant) fails with a CONFLICT kind.
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	LockByID(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	ExistsConfirmed(ctx context.Context, tenantID, staffID uuid.UUID, startsAt time.Time) (bool, error)
	CountConfirmedSince(ctx context.Context, tenantID uuid.UUID, since time.Time) (int, error)
}

type PolicyRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, p schedule.Policy) error
}
