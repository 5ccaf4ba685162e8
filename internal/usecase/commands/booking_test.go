//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/tests/common/builder"
	"barbershop-booking/tests/common/memstore"
	commandsmock "barbershop-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	store    *memstore.Store
	clock    *clock.MockClock
	notifier *commandsmock.MockNotifier
	cache    *commandsmock.MockSlotCacheInvalidator
	metrics  *commandsmock.MockReservationMetrics
	cmds     commands.BookingCommands

	plan    shared.PlanSnapshot
	tenant  shared.TenantSnapshot
	staff   shared.StaffSnapshot
	service shared.ServiceSnapshot
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.reset()
}

// every subtest starts from an empty store and fresh expectations
func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.reset()
}

func (s *BookingCommandsTestSuite) reset() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = memstore.New()
	s.clock = clock.NewMockClock(fixedNow)
	s.notifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.cache = commandsmock.NewMockSlotCacheInvalidator(s.mockCtrl)
	s.metrics = commandsmock.NewMockReservationMetrics(s.mockCtrl)
	s.cmds = commands.NewBookingCommands(s.store, s.notifier, s.cache, s.metrics, s.clock)

	s.plan = s.store.AddPlan(builder.NewPlanBuilder().BuildSnapshot())
	s.tenant = s.addTenant(true, ptrTime(fixedNow.Add(30*24*time.Hour)))
	s.staff = s.addStaff(s.tenant.ID, true)
	s.service = s.addService(s.tenant.ID, true)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// ================================================================================
// fixtures
// ================================================================================

func ptrTime(t time.Time) *time.Time { return &t }

func (s *BookingCommandsTestSuite) addTenant(active bool, expiresAt *time.Time) shared.TenantSnapshot {
	snap := builder.NewTenantBuilder().With(func(b *builder.TenantBuilder) {
		b.ID = uuid.New()
		b.Active = active
		b.ExpiresAt = expiresAt
		b.Email = b.ID.String() + "@example.com"
		b.Slug = "shop-" + b.ID.String()[:8]
	}).BuildSnapshot()
	return s.store.AddTenant(snap, s.plan.ID)
}

func (s *BookingCommandsTestSuite) addStaff(tenantID uuid.UUID, active bool) shared.StaffSnapshot {
	return s.store.AddStaff(shared.StaffSnapshot{
		TenantID:   tenantID,
		Name:       "Meu Barbeiro",
		Specialty:  "Cortes e Barbas",
		Active:     active,
		Commission: decimal.NewFromInt(50),
		CreatedAt:  fixedNow,
	})
}

func (s *BookingCommandsTestSuite) addService(tenantID uuid.UUID, active bool) shared.ServiceSnapshot {
	return s.store.AddService(shared.ServiceSnapshot{
		TenantID:        tenantID,
		Name:            "Corte Masculino",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("35.00"),
		Active:          active,
	})
}

func (s *BookingCommandsTestSuite) input(startsAt time.Time) commands.ReserveInput {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.TenantID = s.tenant.ID
		b.StaffID = s.staff.ID
		b.ServiceID = s.service.ID
		b.StartsAt = startsAt
	}).BuildReserveInput()
}

func tomorrowAt(hour, minute int) time.Time {
	d := fixedNow.Add(24 * time.Hour)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

// allowSideEffects accepts any post-commit calls for tests that focus elsewhere.
func (s *BookingCommandsTestSuite) allowSideEffects() {
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().ObserveReservation(gomock.Any()).AnyTimes()
}

func (s *BookingCommandsTestSuite) reserve(startsAt time.Time) *commands.BookingResult {
	res, err := s.cmds.Reserve(s.ctx, s.input(startsAt))
	s.Require().NoError(err)
	return res
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *BookingCommandsTestSuite) TestReserve() {
	s.Run("success: confirms the slot and notifies after commit", func() {
		startsAt := tomorrowAt(14, 0)

		s.metrics.EXPECT().ObserveReservation(commands.OutcomeConfirmed).Times(1)
		s.cache.EXPECT().Invalidate(gomock.Any(), s.tenant.ID, s.staff.ID, schedule.Day(startsAt)).Times(1)
		s.notifier.EXPECT().Notify(gomock.Any(), commands.EventBookingConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Event, n commands.BookingNotice) bool {
				s.Equal(s.tenant.ID, n.TenantID)
				s.Equal("11912345678", n.CustomerPhone)
				s.Equal(booking.StatusConfirmed.String(), n.Status)
				s.True(n.StartsAt.Equal(startsAt))
				return true
			}).Times(1)

		res, err := s.cmds.Reserve(s.ctx, s.input(startsAt))

		s.Require().NoError(err)
		s.Equal(int64(1), res.Number)
		s.Equal("AG000001", res.Code)
		s.Equal(booking.StatusConfirmed, res.Status)
		s.Equal(1, s.store.ConfirmedAt(s.tenant.ID, s.staff.ID, startsAt))
	})

	s.Run("success: an undelivered notification does not fail the booking", func() {
		s.metrics.EXPECT().ObserveReservation(commands.OutcomeConfirmed).Times(1)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(1)

		_, err := s.cmds.Reserve(s.ctx, s.input(tomorrowAt(15, 0)))
		s.NoError(err)
	})

	s.Run("success: nil ports are tolerated", func() {
		cmds := commands.NewBookingCommands(s.store, nil, nil, nil, s.clock)
		_, err := cmds.Reserve(s.ctx, s.input(tomorrowAt(16, 0)))
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestReserve_Rejections() {
	testCases := []struct {
		name   string
		mutate func(in *commands.ReserveInput)
		target error
	}{
		{
			name:   "unknown tenant is reported as inactive",
			mutate: func(in *commands.ReserveInput) { in.TenantID = uuid.New() },
			target: commands.ErrTenantInactive,
		},
		{
			name: "inactive tenant",
			mutate: func(in *commands.ReserveInput) {
				in.TenantID = s.addTenant(false, nil).ID
			},
			target: commands.ErrTenantInactive,
		},
		{
			name: "expired tenant",
			mutate: func(in *commands.ReserveInput) {
				in.TenantID = s.addTenant(true, ptrTime(fixedNow.Add(-time.Minute))).ID
			},
			target: commands.ErrTenantInactive,
		},
		{
			name: "tenant expiring exactly now",
			mutate: func(in *commands.ReserveInput) {
				in.TenantID = s.addTenant(true, ptrTime(fixedNow)).ID
			},
			target: commands.ErrTenantInactive,
		},
		{
			name:   "customer phone too short",
			mutate: func(in *commands.ReserveInput) { in.Customer.Phone = "123" },
			target: commands.ErrValidation,
		},
		{
			name:   "customer name missing",
			mutate: func(in *commands.ReserveInput) { in.Customer.Name = "" },
			target: commands.ErrValidation,
		},
		{
			name:   "unknown staff",
			mutate: func(in *commands.ReserveInput) { in.StaffID = uuid.New() },
			target: commands.ErrValidation,
		},
		{
			name: "staff of another tenant",
			mutate: func(in *commands.ReserveInput) {
				other := s.addTenant(true, nil)
				in.StaffID = s.addStaff(other.ID, true).ID
			},
			target: commands.ErrValidation,
		},
		{
			name:   "inactive staff",
			mutate: func(in *commands.ReserveInput) { in.StaffID = s.addStaff(s.tenant.ID, false).ID },
			target: commands.ErrValidation,
		},
		{
			name:   "unknown service",
			mutate: func(in *commands.ReserveInput) { in.ServiceID = uuid.New() },
			target: commands.ErrValidation,
		},
		{
			name:   "inactive service",
			mutate: func(in *commands.ReserveInput) { in.ServiceID = s.addService(s.tenant.ID, false).ID },
			target: commands.ErrValidation,
		},
		{
			name:   "instant in the past",
			mutate: func(in *commands.ReserveInput) { in.StartsAt = fixedNow.Add(-time.Hour) },
			target: commands.ErrValidation,
		},
		{
			name:   "instant equal to now",
			mutate: func(in *commands.ReserveInput) { in.StartsAt = fixedNow },
			target: commands.ErrValidation,
		},
		{
			name: "inactive tenant wins over a past instant",
			mutate: func(in *commands.ReserveInput) {
				in.TenantID = s.addTenant(false, nil).ID
				in.StartsAt = fixedNow.Add(-time.Hour)
			},
			target: commands.ErrTenantInactive,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.metrics.EXPECT().ObserveReservation(commands.OutcomeRejected).Times(1)

			in := s.input(tomorrowAt(10, 0))
			tc.mutate(&in)

			res, err := s.cmds.Reserve(s.ctx, in)
			s.Nil(res)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.target), "expected %v, got %v", tc.target, err)
		})
	}
}

func (s *BookingCommandsTestSuite) TestReserve_Quota() {
	s.Run("error: monthly booking limit reached", func() {
		s.allowSideEffects()
		limit := 1
		s.plan = s.store.AddPlan(builder.NewPlanBuilder().With(func(b *builder.PlanBuilder) {
			b.Name = "Tiny"
			b.BookingLimit = &limit
		}).BuildSnapshot())
		s.tenant = s.addTenant(true, nil)
		s.staff = s.addStaff(s.tenant.ID, true)
		s.service = s.addService(s.tenant.ID, true)

		s.reserve(tomorrowAt(9, 0))
		s.Equal(1, s.store.TenantLocks(s.tenant.ID))

		// quota is checked before customer validation
		in := s.input(tomorrowAt(10, 0))
		in.Customer.Phone = "1"
		_, err := s.cmds.Reserve(s.ctx, in)
		s.True(errs.Is(err, commands.ErrQuotaExceeded), "got %v", err)
	})

	s.Run("success: cancelled bookings do not count against the quota", func() {
		s.allowSideEffects()
		limit := 1
		s.plan = s.store.AddPlan(builder.NewPlanBuilder().With(func(b *builder.PlanBuilder) {
			b.Name = "Tiny2"
			b.BookingLimit = &limit
		}).BuildSnapshot())
		s.tenant = s.addTenant(true, nil)
		s.staff = s.addStaff(s.tenant.ID, true)
		s.service = s.addService(s.tenant.ID, true)

		first := s.reserve(tomorrowAt(9, 0))
		_, err := s.cmds.Cancel(s.ctx, s.tenant.ID, first.BookingID)
		s.Require().NoError(err)

		_, err = s.cmds.Reserve(s.ctx, s.input(tomorrowAt(10, 0)))
		s.NoError(err)
	})

	s.Run("success: unlimited plan", func() {
		s.allowSideEffects()
		s.plan = s.store.AddPlan(builder.NewPlanBuilder().With(func(b *builder.PlanBuilder) {
			b.Name = "Unlimited"
		}).Unlimited().BuildSnapshot())
		s.tenant = s.addTenant(true, nil)
		s.staff = s.addStaff(s.tenant.ID, true)
		s.service = s.addService(s.tenant.ID, true)

		for h := 8; h < 12; h++ {
			s.reserve(tomorrowAt(h, 0))
		}
		s.Zero(s.store.TenantLocks(s.tenant.ID), "no quota, no tenant lock")
	})
}

func (s *BookingCommandsTestSuite) TestReserve_Conflicts() {
	s.Run("error: slot already confirmed", func() {
		s.allowSideEffects()
		startsAt := tomorrowAt(11, 0)
		s.reserve(startsAt)

		in := s.input(startsAt)
		in.Customer.Phone = "21999998888"
		_, err := s.cmds.Reserve(s.ctx, in)

		s.True(errs.Is(err, commands.ErrSlotConflict), "got %v", err)
		s.Equal(1, s.store.ConfirmedAt(s.tenant.ID, s.staff.ID, startsAt))
	})

	s.Run("error: unique index violation on insert maps to conflict", func() {
		s.metrics.EXPECT().ObserveReservation(commands.OutcomeConflict).Times(1)
		s.store.FailBookingCreate(infra.NewRepoErr(infra.KindConflict, "bookings_confirmed_slot_uniq"))
		defer s.store.FailBookingCreate(nil)

		_, err := s.cmds.Reserve(s.ctx, s.input(tomorrowAt(12, 0)))
		s.True(errs.Is(err, commands.ErrSlotConflict), "got %v", err)
	})

	s.Run("error: driver failure is reported as a database failure", func() {
		s.metrics.EXPECT().ObserveReservation(commands.OutcomeError).Times(1)
		s.store.FailBookingCreate(infra.NewRepoErr(infra.KindDBFailure, "connection reset"))
		defer s.store.FailBookingCreate(nil)

		_, err := s.cmds.Reserve(s.ctx, s.input(tomorrowAt(12, 30)))
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
	})

	s.Run("success: another staff member at the same instant", func() {
		s.allowSideEffects()
		startsAt := tomorrowAt(13, 0)
		s.reserve(startsAt)

		in := s.input(startsAt)
		in.StaffID = s.addStaff(s.tenant.ID, true).ID
		_, err := s.cmds.Reserve(s.ctx, in)
		s.NoError(err)
	})

	s.Run("success: returning customer is reused by phone", func() {
		s.allowSideEffects()
		before := s.store.CustomerCount(s.tenant.ID)
		s.reserve(tomorrowAt(17, 0))
		s.reserve(tomorrowAt(17, 30))
		s.Equal(before+1, s.store.CustomerCount(s.tenant.ID))
	})
}

func (s *BookingCommandsTestSuite) TestReserve_Concurrent() {
	const attempts = 20
	startsAt := tomorrowAt(18, 0)

	s.metrics.EXPECT().ObserveReservation(commands.OutcomeConfirmed).Times(1)
	s.metrics.EXPECT().ObserveReservation(commands.OutcomeConflict).Times(attempts - 1)
	s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.cmds.Reserve(s.ctx, s.input(startsAt))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				confirmed++
			case errs.Is(err, commands.ErrSlotConflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(1, confirmed)
	s.Equal(attempts-1, conflicts)
	s.Equal(1, s.store.ConfirmedAt(s.tenant.ID, s.staff.ID, startsAt))
}

// ================================================================================
// TestCancel / TestComplete
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("success: frees the slot for a new booking", func() {
		startsAt := tomorrowAt(14, 0)
		s.metrics.EXPECT().ObserveReservation(commands.OutcomeConfirmed).Times(2)
		s.cache.EXPECT().Invalidate(gomock.Any(), s.tenant.ID, s.staff.ID, schedule.Day(startsAt)).Times(3)
		s.notifier.EXPECT().Notify(gomock.Any(), commands.EventBookingConfirmed, gomock.Any()).Return(true).Times(2)
		s.notifier.EXPECT().Notify(gomock.Any(), commands.EventBookingCancelled, gomock.Any()).Return(true).Times(1)

		first := s.reserve(startsAt)
		res, err := s.cmds.Cancel(s.ctx, s.tenant.ID, first.BookingID)
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, res.Status)
		s.Equal(0, s.store.ConfirmedAt(s.tenant.ID, s.staff.ID, startsAt))

		second := s.reserve(startsAt)
		s.NotEqual(first.BookingID, second.BookingID)
		s.Equal(1, s.store.ConfirmedAt(s.tenant.ID, s.staff.ID, startsAt))
	})

	s.Run("error: cancelling twice", func() {
		s.allowSideEffects()
		b := s.reserve(tomorrowAt(15, 0))
		_, err := s.cmds.Cancel(s.ctx, s.tenant.ID, b.BookingID)
		s.Require().NoError(err)

		_, err = s.cmds.Cancel(s.ctx, s.tenant.ID, b.BookingID)
		s.True(errs.Is(err, commands.ErrAlreadyCancelled), "got %v", err)
	})

	s.Run("error: booking of another tenant is not found", func() {
		s.allowSideEffects()
		b := s.reserve(tomorrowAt(16, 0))
		_, err := s.cmds.Cancel(s.ctx, uuid.New(), b.BookingID)
		s.True(errs.Is(err, commands.ErrBookingNotFound), "got %v", err)
		s.True(errs.Is(err, errs.ErrNotFound))

		stored, ok := s.store.Booking(b.BookingID)
		s.Require().True(ok)
		s.Equal(booking.StatusConfirmed.String(), stored.Status)
	})

	s.Run("error: completed booking cannot be cancelled", func() {
		s.allowSideEffects()
		b := s.reserve(tomorrowAt(16, 30))
		_, err := s.cmds.Complete(s.ctx, s.tenant.ID, b.BookingID)
		s.Require().NoError(err)

		_, err = s.cmds.Cancel(s.ctx, s.tenant.ID, b.BookingID)
		s.True(errs.Is(err, commands.ErrInvalidTransition), "got %v", err)
		s.True(errs.Is(err, commands.ErrValidation))
	})
}

func (s *BookingCommandsTestSuite) TestComplete() {
	s.Run("success: marks the booking completed", func() {
		s.metrics.EXPECT().ObserveReservation(gomock.Any()).AnyTimes()
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
		s.notifier.EXPECT().Notify(gomock.Any(), commands.EventBookingConfirmed, gomock.Any()).Return(true)
		s.notifier.EXPECT().Notify(gomock.Any(), commands.EventBookingCompleted, gomock.Any()).Return(true)

		b := s.reserve(tomorrowAt(9, 30))
		res, err := s.cmds.Complete(s.ctx, s.tenant.ID, b.BookingID)
		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, res.Status)
		s.Equal(b.Number, res.Number)
	})

	s.Run("error: cancelled booking cannot be completed", func() {
		s.allowSideEffects()
		b := s.reserve(tomorrowAt(10, 30))
		_, err := s.cmds.Cancel(s.ctx, s.tenant.ID, b.BookingID)
		s.Require().NoError(err)

		_, err = s.cmds.Complete(s.ctx, s.tenant.ID, b.BookingID)
		s.True(errs.Is(err, commands.ErrInvalidTransition), "got %v", err)
	})

	s.Run("error: unknown booking", func() {
		_, err := s.cmds.Complete(s.ctx, s.tenant.ID, uuid.New())
		s.True(errs.Is(err, commands.ErrBookingNotFound), "got %v", err)
	})
}
