//go:build unit

package tenant_test

import (
	"testing"
	"time"

	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validParams() tenant.NewTenantParams {
	return tenant.NewTenantParams{
		Name:        "Barbearia do Zé",
		Email:       "ze@barbearia.com",
		Phone:       "(11) 98765-4321",
		Slug:        tenant.BaseSlug("Barbearia do Zé"),
		PlanID:      uuid.New(),
		TrialPeriod: 7 * 24 * time.Hour,
	}
}

func TestNewTenant(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := tenant.NewTenant(validParams(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		require.NotNil(t, actual.ExpiresAt())
		assert.Equal(t, now.Add(7*24*time.Hour), *actual.ExpiresAt())
		assert.Equal(t, "barbearia-do-ze", actual.Slug().String())
		assert.Equal(t, 7, actual.TrialDaysRemaining(now))
	})

	testCases := []struct {
		name   string
		mutate func(p *tenant.NewTenantParams)
		errIs  error
	}{
		{name: "empty name", mutate: func(p *tenant.NewTenantParams) { p.Name = "  " }, errIs: tenant.ErrInvalidName},
		{name: "invalid email", mutate: func(p *tenant.NewTenantParams) { p.Email = "nope" }, errIs: contact.ErrInvalidEmail},
		{name: "short phone", mutate: func(p *tenant.NewTenantParams) { p.Phone = "123" }, errIs: contact.ErrInvalidPhone},
		{name: "missing plan", mutate: func(p *tenant.NewTenantParams) { p.PlanID = uuid.Nil }, errIs: tenant.ErrInvalidPlan},
		{name: "zero trial", mutate: func(p *tenant.NewTenantParams) { p.TrialPeriod = 0 }, errIs: tenant.ErrInvalidTrial},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			_, err := tenant.NewTenant(p, now)
			require.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}
}

func TestTenantAcceptsBookings(t *testing.T) {
	expiry := now.Add(time.Hour)

	t.Run("active and before expiry", func(t *testing.T) {
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), true, &expiry, now)
		assert.NoError(t, tn.EnsureAcceptsBookings(now))
	})

	t.Run("inactive", func(t *testing.T) {
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), false, &expiry, now)
		assert.ErrorIs(t, tn.EnsureAcceptsBookings(now), tenant.ErrTenantInactive)
	})

	t.Run("expired when now equals expiry", func(t *testing.T) {
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), true, &expiry, now)
		assert.ErrorIs(t, tn.EnsureAcceptsBookings(expiry), tenant.ErrTenantExpired)
		assert.Equal(t, 0, tn.TrialDaysRemaining(expiry.Add(48*time.Hour)))
	})

	t.Run("no expiry never expires", func(t *testing.T) {
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), true, nil, now)
		assert.NoError(t, tn.EnsureAcceptsBookings(now.AddDate(10, 0, 0)))
	})
}

func TestTenantActivate(t *testing.T) {
	t.Run("extends from current expiry when still in the future", func(t *testing.T) {
		expiry := now.Add(48 * time.Hour)
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), false, &expiry, now)
		tn.Activate(now, 30)
		assert.True(t, tn.IsActive())
		assert.Equal(t, expiry.AddDate(0, 0, 30), *tn.ExpiresAt())
	})

	t.Run("extends from now when already expired", func(t *testing.T) {
		expiry := now.Add(-48 * time.Hour)
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), false, &expiry, now)
		tn.Activate(now, 30)
		assert.Equal(t, now.AddDate(0, 0, 30), *tn.ExpiresAt())
	})

	t.Run("deactivate", func(t *testing.T) {
		tn := tenant.ReconstructTenant(uuid.New(), "A", "a@b.com", "11987654321", "a", uuid.New(), true, nil, now)
		tn.Deactivate()
		assert.ErrorIs(t, tn.EnsureAcceptsBookings(now), tenant.ErrTenantInactive)
	})
}

func TestPlanQuotas(t *testing.T) {
	plan := tenant.Plan{
		ID:           uuid.New(),
		Name:         "Start",
		MonthlyPrice: decimal.RequireFromString("150.00"),
		StaffLimit:   2,
		BookingLimit: patch.Ptr(2),
	}

	assert.NoError(t, plan.AllowsAnotherBooking(1))
	assert.True(t, errs.Is(plan.AllowsAnotherBooking(2), tenant.ErrBookingQuotaReached))
	assert.NoError(t, plan.AllowsAnotherStaff(1))
	assert.True(t, errs.Is(plan.AllowsAnotherStaff(2), tenant.ErrStaffQuotaReached))

	unlimited := plan
	unlimited.BookingLimit = nil
	assert.NoError(t, unlimited.AllowsAnotherBooking(1_000_000))
}
