package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Event string

const (
	EventBookingConfirmed Event = "booking.confirmed"
	EventBookingCancelled Event = "booking.cancelled"
	EventBookingCompleted Event = "booking.completed"
)

// BookingNotice is the payload handed to notifiers after commit.
type BookingNotice struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Code          string    `json:"code"`
	TenantID      uuid.UUID `json:"tenant_id"`
	StaffID       uuid.UUID `json:"staff_id"`
	ServiceID     uuid.UUID `json:"service_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	StartsAt      time.Time `json:"starts_at"`
	Status        string    `json:"status"`
}

// Notifier is fire-and-forget and must not block the caller on the network.
// false reports a notice that was dropped; the reason is already logged.
type Notifier interface {
	Notify(ctx context.Context, event Event, notice BookingNotice) bool
}

// SlotCacheInvalidator drops cached booked instants for one staff day.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID, staffID uuid.UUID, day time.Time)
}

// ReservationMetrics receives one outcome label per Reserve call.
type ReservationMetrics interface {
	ObserveReservation(outcome string)
}

const (
	OutcomeConfirmed = "confirmed"
	OutcomeConflict  = "conflict"
	OutcomeRejected  = "rejected"
	OutcomeError     = "error"
)

// TokenIssuer signs the owner token returned on registration.
type TokenIssuer interface {
	IssueOwnerToken(tenantID uuid.UUID) (string, error)
}
