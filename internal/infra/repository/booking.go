package repository

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (id, tenant_id, staff_id, service_id, customer_id, starts_at, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING number`

// Create relies on bookings_confirmed_slot_uniq; a lost race surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	var number int64
	err := r.db.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.TenantID(), b.StaffID(), b.ServiceID(), b.CustomerID(),
		b.StartsAt(), b.Status().String(), b.Notes(), b.CreatedAt(), b.UpdatedAt(),
	).Scan(&number)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return number, nil
}

const lockBookingSQL = `
SELECT b.id, b.number, b.tenant_id, b.staff_id, b.service_id, b.customer_id,
       c.name, c.phone, b.starts_at, b.status, b.notes, b.created_at, b.updated_at
FROM bookings b
JOIN customers c ON c.id = b.customer_id AND c.tenant_id = b.tenant_id
WHERE b.tenant_id = $1 AND b.id = $2
FOR UPDATE OF b`

func (r *BookingRepository) LockByID(ctx context.Context, tenantID, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	err := r.db.QueryRow(ctx, lockBookingSQL, tenantID, bookingID).Scan(
		&s.ID, &s.Number, &s.TenantID, &s.StaffID, &s.ServiceID, &s.CustomerID,
		&s.CustomerName, &s.CustomerPhone, &s.StartsAt, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	s.StartsAt = s.StartsAt.UTC()
	return &s, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $3, updated_at = $4
		WHERE tenant_id = $1 AND id = $2`,
		b.TenantID(), b.ID(), b.Status().String(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ExistsConfirmed(ctx context.Context, tenantID, staffID uuid.UUID, startsAt time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE tenant_id = $1 AND staff_id = $2 AND starts_at = $3 AND status = 'confirmed'
		)`, tenantID, staffID, startsAt).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot", err)
	}
	return exists, nil
}

func (r *BookingRepository) CountConfirmedSince(ctx context.Context, tenantID uuid.UUID, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM bookings
		WHERE tenant_id = $1 AND status = 'confirmed' AND created_at >= $2`,
		tenantID, since).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}
