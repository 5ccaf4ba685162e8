package queries

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusFilter = errs.Validation("status must be confirmed, cancelled or completed")
	ErrInvalidCursor       = errs.Validation("invalid pagination cursor")
)

type BookingQueries interface {
	GetBooking(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, tenantID uuid.UUID, filter BookingFilter, cursor *Cursor, limit int) ([]BookingView, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingView, error)
	// List returns bookings ordered by (starts_at, id), strictly after the keyset position when given.
	List(ctx context.Context, tenantID uuid.UUID, filter BookingFilter, after *BookingKey, limit int) ([]BookingView, error)
}

// BookingKey is a decoded keyset position.
type BookingKey struct {
	StartsAt time.Time
	ID       uuid.UUID
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, tenantID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrBookingNotFound)
	}
	decorate(view)
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, tenantID uuid.UUID, filter BookingFilter, cursor *Cursor, limit int) ([]BookingView, *Cursor, error) {
	if filter.Status != "" && !booking.Status(filter.Status).IsValid() {
		return nil, nil, ErrInvalidStatusFilter
	}

	var after *BookingKey
	if cursor != nil && cursor.After != "" {
		startsAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(ErrInvalidCursor, err.Error())
		}
		after = &BookingKey{StartsAt: startsAt, ID: id}
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	items, err := q.store.List(ctx, tenantID, filter, after, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartsAt, last.ID)}
	}
	for i := range items {
		decorate(&items[i])
	}
	return items, next, nil
}

func decorate(v *BookingView) {
	v.Code = booking.Code(v.Number)
	if p, err := contact.NewPhone(v.CustomerPhone); err == nil {
		v.CustomerPhone = p.Formatted()
	}
}
