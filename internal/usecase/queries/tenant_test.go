//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/tests/common/builder"
	queriesmock "barbershop-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TenantQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	tenants  *queriesmock.MockTenantReadStore
	catalog  *queriesmock.MockCatalogReadStore
	policies *queriesmock.MockAvailabilityReadStore
	queries  queries.TenantQueries
}

func (s *TenantQueriesTestSuite) SetupTest() {
	s.reset()
}

func (s *TenantQueriesTestSuite) SetupSubTest() {
	s.reset()
}

func (s *TenantQueriesTestSuite) reset() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.tenants = queriesmock.NewMockTenantReadStore(s.mockCtrl)
	s.catalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.policies = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.queries = queries.NewTenantQueries(s.tenants, s.catalog, s.policies, clock.NewMockClock(fixedNow))
}

func (s *TenantQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTenantQueriesSuite(t *testing.T) {
	suite.Run(t, new(TenantQueriesTestSuite))
}

func (s *TenantQueriesTestSuite) TestGetTenant() {
	s.Run("success: trial days and formatted phone", func() {
		expires := fixedNow.Add(3*24*time.Hour + 5*time.Hour)
		raw := builder.NewTenantBuilder().With(func(b *builder.TenantBuilder) { b.ExpiresAt = &expires }).BuildView()
		s.tenants.EXPECT().FindByID(gomock.Any(), raw.ID).Return(raw, nil)

		view, err := s.queries.GetTenant(s.ctx, raw.ID)
		s.Require().NoError(err)
		s.Equal(3, view.TrialDaysRemaining)
		s.Equal("(11) 98765-4321", view.Phone)
	})

	s.Run("success: expired tenant has no days left", func() {
		expired := fixedNow.Add(-time.Hour)
		raw := builder.NewTenantBuilder().With(func(b *builder.TenantBuilder) { b.ExpiresAt = &expired }).BuildView()
		s.tenants.EXPECT().FindByID(gomock.Any(), raw.ID).Return(raw, nil)

		view, err := s.queries.GetTenant(s.ctx, raw.ID)
		s.Require().NoError(err)
		s.Zero(view.TrialDaysRemaining)
	})

	s.Run("error: not found", func() {
		s.tenants.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindNotFound, "tenant"))

		_, err := s.queries.GetTenant(s.ctx, uuid.New())
		s.True(errs.Is(err, shared.ErrTenantNotFound), "got %v", err)
	})
}

func (s *TenantQueriesTestSuite) TestListTenants() {
	s.Run("page numbers below one read the first page", func() {
		s.tenants.EXPECT().List(gomock.Any(), queries.TenantPageSize, 0).
			Return([]queries.TenantView{*builder.NewTenantBuilder().BuildView()}, 1, nil)

		page, err := s.queries.ListTenants(s.ctx, 0)
		s.Require().NoError(err)
		s.Equal(1, page.Page)
		s.Equal(1, page.Total)
		s.Len(page.Items, 1)
	})

	s.Run("offset follows the page", func() {
		s.tenants.EXPECT().List(gomock.Any(), queries.TenantPageSize, 2*queries.TenantPageSize).Return(nil, 41, nil)

		page, err := s.queries.ListTenants(s.ctx, 3)
		s.Require().NoError(err)
		s.Equal(3, page.Page)
		s.Equal(queries.TenantPageSize, page.PageSize)
		s.Empty(page.Items)
	})
}

func (s *TenantQueriesTestSuite) TestListCatalog() {
	s.Run("success: combines staff, services and hours", func() {
		t := builder.NewTenantBuilder().BuildView()
		staffList := []queries.StaffView{{ID: uuid.New(), TenantID: t.ID, Name: "Carlos", Active: true}}
		services := []queries.ServiceView{{ID: uuid.New(), Name: "Barba", DurationMinutes: 30}}

		s.tenants.EXPECT().FindByID(gomock.Any(), t.ID).Return(t, nil)
		s.catalog.EXPECT().ActiveStaff(gomock.Any(), t.ID).Return(staffList, nil)
		s.catalog.EXPECT().ActiveServices(gomock.Any(), t.ID).Return(services, nil)
		s.policies.EXPECT().PolicyFor(gomock.Any(), t.ID).Return(schedule.DefaultPolicy(), false, nil)

		view, err := s.queries.ListCatalog(s.ctx, t.ID)
		s.Require().NoError(err)

		want := &queries.CatalogView{
			TenantID:   t.ID,
			TenantName: t.Name,
			Slug:       t.Slug,
			Staff:      staffList,
			Services:   services,
			Policy: queries.PolicyView{
				OpensAt: "08:00", ClosesAt: "18:00", IntervalMinutes: 30,
				Reminder24h: true, Reminder1h: true, AutoConfirm: true, NotificationsEnabled: true,
			},
		}
		if diff := cmp.Diff(want, view); diff != "" {
			s.Failf("catalog mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: unknown tenant", func() {
		s.tenants.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindNotFound, "tenant"))

		_, err := s.queries.ListCatalog(s.ctx, uuid.New())
		s.True(errs.Is(err, shared.ErrTenantNotFound), "got %v", err)
	})

	s.Run("error: closed shops expose nothing", func() {
		expired := fixedNow.Add(-time.Minute)
		for name, mutate := range map[string]func(*builder.TenantBuilder){
			"inactive": func(b *builder.TenantBuilder) { b.Active = false },
			"expired":  func(b *builder.TenantBuilder) { b.ExpiresAt = &expired },
		} {
			t := builder.NewTenantBuilder().With(mutate).BuildView()
			s.tenants.EXPECT().FindByID(gomock.Any(), t.ID).Return(t, nil)

			_, err := s.queries.ListCatalog(s.ctx, t.ID)
			s.True(errs.Is(err, shared.ErrTenantInactive), "%s: got %v", name, err)
			s.False(errs.Is(err, errs.ErrNotFound), name)
		}
	})
}

func (s *TenantQueriesTestSuite) TestCatalogBySlug() {
	s.Run("success: resolves the shop and its catalog", func() {
		t := builder.NewTenantBuilder().BuildView()
		s.tenants.EXPECT().FindBySlug(gomock.Any(), "barbearia-do-ze").Return(t, nil)
		s.catalog.EXPECT().ActiveStaff(gomock.Any(), t.ID).Return(nil, nil)
		s.catalog.EXPECT().ActiveServices(gomock.Any(), t.ID).Return(nil, nil)
		s.policies.EXPECT().PolicyFor(gomock.Any(), t.ID).Return(schedule.DefaultPolicy(), true, nil)

		view, err := s.queries.CatalogBySlug(s.ctx, "barbearia-do-ze")
		s.Require().NoError(err)
		s.Equal(t.ID, view.TenantID)
		s.True(view.Policy.Configured)
	})

	s.Run("error: malformed slug never reaches the store", func() {
		for _, raw := range []string{"", "Barbearia", "-ze", "ze-", "barbearia do ze", "barbearia-do-ze-com-nome-muito-longo"} {
			_, err := s.queries.CatalogBySlug(s.ctx, raw)
			s.True(errs.Is(err, shared.ErrTenantNotFound), "%q: got %v", raw, err)
			s.False(errs.Is(err, errs.ErrDomainValidation), raw)
		}
	})

	s.Run("error: unknown slug", func() {
		s.tenants.EXPECT().FindBySlug(gomock.Any(), "nada").Return(nil, infra.NewRepoErr(infra.KindNotFound, "tenant"))

		_, err := s.queries.CatalogBySlug(s.ctx, "nada")
		s.True(errs.Is(err, shared.ErrTenantNotFound), "got %v", err)
	})

	s.Run("error: inactive shop", func() {
		t := builder.NewTenantBuilder().With(func(b *builder.TenantBuilder) { b.Active = false }).BuildView()
		s.tenants.EXPECT().FindBySlug(gomock.Any(), t.Slug).Return(t, nil)

		_, err := s.queries.CatalogBySlug(s.ctx, t.Slug)
		s.True(errs.Is(err, shared.ErrTenantInactive), "got %v", err)
	})
}
