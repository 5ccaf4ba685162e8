//go:build unit

package booking_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC)

func validParams() booking.NewBookingParams {
	return booking.NewBookingParams{
		TenantID:   uuid.New(),
		StaffID:    uuid.New(),
		ServiceID:  uuid.New(),
		CustomerID: uuid.New(),
		StartsAt:   now.Add(time.Hour),
		Notes:      "  prefers scissors  ",
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("confirmed on creation", func(t *testing.T) {
		b, err := booking.NewBooking(validParams(), now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "prefers scissors", b.Notes())
		assert.Equal(t, now, b.CreatedAt())
	})

	tests := []struct {
		name   string
		mutate func(p *booking.NewBookingParams)
		want   error
	}{
		{name: "starts now", mutate: func(p *booking.NewBookingParams) { p.StartsAt = now }, want: booking.ErrPastInstant},
		{name: "starts in the past", mutate: func(p *booking.NewBookingParams) { p.StartsAt = now.Add(-time.Minute) }, want: booking.ErrPastInstant},
		{name: "missing staff", mutate: func(p *booking.NewBookingParams) { p.StaffID = uuid.Nil }, want: booking.ErrMissingReference},
		{name: "notes too long", mutate: func(p *booking.NewBookingParams) { p.Notes = strings.Repeat("x", 501) }, want: booking.ErrNotesTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := booking.NewBooking(p, now)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "AG000042", booking.Code(42))
	assert.Equal(t, "AG1234567", booking.Code(1234567))
}

func TestCancel(t *testing.T) {
	later := now.Add(time.Minute)

	t.Run("confirmed to cancelled", func(t *testing.T) {
		b, err := booking.NewBooking(validParams(), now)
		require.NoError(t, err)
		require.NoError(t, b.Cancel(later))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
		assert.False(t, b.Status().HoldsSlot())
	})

	t.Run("cancelling twice", func(t *testing.T) {
		b, _ := booking.NewBooking(validParams(), now)
		require.NoError(t, b.Cancel(later))
		err := b.Cancel(later)
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		b, _ := booking.NewBooking(validParams(), now)
		require.NoError(t, b.Complete(later))
		err := b.Cancel(later)
		assert.True(t, errors.Is(err, booking.ErrInvalidTransition))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestComplete(t *testing.T) {
	b, _ := booking.NewBooking(validParams(), now)
	require.NoError(t, b.Complete(now))
	assert.Equal(t, booking.StatusCompleted, b.Status())
	assert.True(t, errors.Is(b.Complete(now), booking.ErrInvalidTransition))
}
