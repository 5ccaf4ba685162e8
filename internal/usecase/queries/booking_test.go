//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/tests/common/builder"
	queriesmock "barbershop-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("decorates code and phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		raw := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.TenantID = tenantID
			b.Number = 7
		}).BuildView()
		raw.Code = ""
		store.EXPECT().FindByID(gomock.Any(), tenantID, raw.ID).Return(raw, nil)

		view, err := queries.NewBookingQueries(store).GetBooking(ctx, tenantID, raw.ID)
		require.NoError(t, err)
		assert.Equal(t, "AG000007", view.Code)
		assert.Equal(t, "(11) 91234-5678", view.CustomerPhone)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), tenantID, gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking"))

		_, err := queries.NewBookingQueries(store).GetBooking(ctx, tenantID, uuid.New())
		assert.True(t, errs.Is(err, shared.ErrBookingNotFound), "got %v", err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	base := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)

	rows := func(n int) []queries.BookingView {
		out := make([]queries.BookingView, n)
		for i := range out {
			out[i] = *builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = uuid.New()
				b.Number = int64(i + 1)
				b.TenantID = tenantID
				b.StartsAt = base.Add(time.Duration(i) * 30 * time.Minute)
			}).BuildView()
		}
		return out
	}

	t.Run("full page yields a cursor at the last item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		all := rows(3)
		store.EXPECT().List(gomock.Any(), tenantID, queries.BookingFilter{}, (*queries.BookingKey)(nil), 3).Return(all, nil)

		items, next, err := queries.NewBookingQueries(store).ListBookings(ctx, tenantID, queries.BookingFilter{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)
		assert.Equal(t, "AG000001", items[0].Code)

		startsAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, startsAt.Equal(all[1].StartsAt))
		assert.Equal(t, all[1].ID, id)
	})

	t.Run("cursor is decoded into a keyset position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		afterID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, afterID)}
		filter := queries.BookingFilter{Day: base, Status: "confirmed"}

		store.EXPECT().List(gomock.Any(), tenantID, filter, gomock.Any(), queries.DefaultListLimit+1).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ queries.BookingFilter, after *queries.BookingKey, _ int) ([]queries.BookingView, error) {
				require.NotNil(t, after)
				assert.True(t, after.StartsAt.Equal(base))
				assert.Equal(t, afterID, after.ID)
				return rows(1), nil
			})

		items, next, err := queries.NewBookingQueries(store).ListBookings(ctx, tenantID, filter, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), tenantID, gomock.Any(), gomock.Any(), queries.MaxListLimit+1).Return(nil, nil)

		_, _, err := queries.NewBookingQueries(store).ListBookings(ctx, tenantID, queries.BookingFilter{}, nil, 10_000)
		require.NoError(t, err)
	})

	t.Run("rejects bad filters before touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		_, _, err := q.ListBookings(ctx, tenantID, queries.BookingFilter{Status: "pending"}, nil, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidStatusFilter), "got %v", err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))

		_, _, err = q.ListBookings(ctx, tenantID, queries.BookingFilter{}, &queries.Cursor{After: "@@@"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
	})
}
