package booking

import (
	"fmt"
	"strings"
	"time"

	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNotesLength = 500

var (
	ErrPastInstant       = errs.Validation("cannot book an instant that is not in the future")
	ErrNotesTooLong      = errs.Validation("notes must have at most 500 characters")
	ErrMissingReference  = errs.Validation("booking requires tenant, staff, service and customer")
	ErrInvalidTransition = errs.Validation("booking status transition not allowed")
	ErrAlreadyCancelled  = errs.New("booking already cancelled")
)

type Booking struct {
	id         uuid.UUID
	number     int64
	tenantID   uuid.UUID
	staffID    uuid.UUID
	serviceID  uuid.UUID
	customerID uuid.UUID
	startsAt   time.Time
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

type NewBookingParams struct {
	TenantID   uuid.UUID
	StaffID    uuid.UUID
	ServiceID  uuid.UUID
	CustomerID uuid.UUID
	StartsAt   time.Time
	Notes      string
}

// NewBooking creates a confirmed booking. StartsAt must be strictly after now.
func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	if p.TenantID == uuid.Nil || p.StaffID == uuid.Nil || p.ServiceID == uuid.Nil || p.CustomerID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if !p.StartsAt.After(now) {
		return nil, ErrPastInstant
	}
	notes := strings.TrimSpace(p.Notes)
	if len(notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	return &Booking{
		id:         uuid.New(),
		tenantID:   p.TenantID,
		staffID:    p.StaffID,
		serviceID:  p.ServiceID,
		customerID: p.CustomerID,
		startsAt:   p.StartsAt.UTC(),
		status:     StatusConfirmed,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(id uuid.UUID, number int64, tenantID, staffID, serviceID, customerID uuid.UUID, startsAt time.Time, status Status, notes string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:         id,
		number:     number,
		tenantID:   tenantID,
		staffID:    staffID,
		serviceID:  serviceID,
		customerID: customerID,
		startsAt:   startsAt,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Number() int64         { return b.number }
func (b *Booking) TenantID() uuid.UUID   { return b.tenantID }
func (b *Booking) StaffID() uuid.UUID    { return b.staffID }
func (b *Booking) ServiceID() uuid.UUID  { return b.serviceID }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) StartsAt() time.Time   { return b.startsAt }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Notes() string         { return b.notes }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

// Code is the short human reference shown to customers, e.g. AG000042.
func Code(number int64) string {
	return fmt.Sprintf("AG%06d", number)
}

// Cancel frees the slot. Cancelling twice is an error so callers notice duplicates.
func (b *Booking) Cancel(now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", b.status, StatusCancelled)
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", b.status, StatusCompleted)
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}
