package shared

import (
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/domain/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type PlanSnapshot struct {
	ID           uuid.UUID
	Name         string
	MonthlyPrice decimal.Decimal
	StaffLimit   int
	BookingLimit *int
	Features     []string
}

func (p PlanSnapshot) ToDomain() tenant.Plan {
	return tenant.Plan{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		StaffLimit:   p.StaffLimit,
		BookingLimit: p.BookingLimit,
		Features:     p.Features,
	}
}

type TenantSnapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Slug      string
	Active    bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	Plan      PlanSnapshot
}

func (t TenantSnapshot) ToDomain() *tenant.Tenant {
	return tenant.ReconstructTenant(t.ID, t.Name, t.Email, t.Phone, t.Slug, t.Plan.ID, t.Active, t.ExpiresAt, t.CreatedAt)
}

type StaffSnapshot struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Name       string
	Specialty  string
	Active     bool
	Commission decimal.Decimal
	CreatedAt  time.Time
}

func (s StaffSnapshot) ToDomain() *staff.Member {
	return staff.ReconstructMember(s.ID, s.TenantID, s.Name, s.Specialty, s.Active, s.Commission, s.CreatedAt)
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	Active          bool
	Description     string
}

func (s ServiceSnapshot) ToDomain() *catalog.Service {
	return catalog.ReconstructService(s.ID, s.TenantID, s.Name, s.DurationMinutes, s.Price, s.Active, s.Description)
}

type BookingSnapshot struct {
	ID            uuid.UUID
	Number        int64
	TenantID      uuid.UUID
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	StartsAt      time.Time
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.Number, b.TenantID, b.StaffID, b.ServiceID, b.CustomerID,
		b.StartsAt, booking.Status(b.Status), b.Notes, b.CreatedAt, b.UpdatedAt)
}
