package queries

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const TenantPageSize = 20

type TenantQueries interface {
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*TenantView, error)
	ListTenants(ctx context.Context, page int) (*TenantPage, error)
	ListPlans(ctx context.Context) ([]PlanView, error)
	ListCatalog(ctx context.Context, tenantID uuid.UUID) (*CatalogView, error)
	CatalogBySlug(ctx context.Context, slug string) (*CatalogView, error)
}

type TenantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TenantView, error)
	FindBySlug(ctx context.Context, slug string) (*TenantView, error)
	// List returns newest tenants first together with the total count.
	List(ctx context.Context, limit, offset int) ([]TenantView, int, error)
	ListPlans(ctx context.Context) ([]PlanView, error)
}

type CatalogReadStore interface {
	ActiveStaff(ctx context.Context, tenantID uuid.UUID) ([]StaffView, error)
	ActiveServices(ctx context.Context, tenantID uuid.UUID) ([]ServiceView, error)
}

type tenantQueriesImpl struct {
	tenants  TenantReadStore
	catalog  CatalogReadStore
	policies AvailabilityReadStore
	clock    clock.Clock
}

func NewTenantQueries(tenants TenantReadStore, catalog CatalogReadStore, policies AvailabilityReadStore, clk clock.Clock) TenantQueries {
	return &tenantQueriesImpl{
		tenants:  tenants,
		catalog:  catalog,
		policies: policies,
		clock:    clk,
	}
}

func (q *tenantQueriesImpl) GetTenant(ctx context.Context, tenantID uuid.UUID) (*TenantView, error) {
	view, err := q.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	q.decorate(view)
	return view, nil
}

func (q *tenantQueriesImpl) ListTenants(ctx context.Context, page int) (*TenantPage, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := q.tenants.List(ctx, TenantPageSize, (page-1)*TenantPageSize)
	if err != nil {
		return nil, err
	}
	for i := range items {
		q.decorate(&items[i])
	}
	return &TenantPage{Items: items, Total: total, Page: page, PageSize: TenantPageSize}, nil
}

func (q *tenantQueriesImpl) ListPlans(ctx context.Context) ([]PlanView, error) {
	return q.tenants.ListPlans(ctx)
}

func (q *tenantQueriesImpl) ListCatalog(ctx context.Context, tenantID uuid.UUID) (*CatalogView, error) {
	t, err := q.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	return q.catalogOf(ctx, t)
}

func (q *tenantQueriesImpl) CatalogBySlug(ctx context.Context, raw string) (*CatalogView, error) {
	slug, err := tenant.ParseSlug(raw)
	if err != nil {
		// nothing can be stored under a malformed slug
		return nil, shared.MarkNotFound(errs.Newf("malformed slug %q", raw), shared.ErrTenantNotFound)
	}
	t, err := q.tenants.FindBySlug(ctx, slug.String())
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	return q.catalogOf(ctx, t)
}

// catalogOf is the customer-facing view, so closed shops are refused like a reserve would be.
func (q *tenantQueriesImpl) catalogOf(ctx context.Context, t *TenantView) (*CatalogView, error) {
	if err := ensureOpen(t, q.clock.Now()); err != nil {
		return nil, err
	}
	tenantID := t.ID
	staffList, err := q.catalog.ActiveStaff(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	services, err := q.catalog.ActiveServices(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	policy, configured, err := q.policies.PolicyFor(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	prefs := policy.Preferences()
	return &CatalogView{
		TenantID:   t.ID,
		TenantName: t.Name,
		Slug:       t.Slug,
		Staff:      staffList,
		Services:   services,
		Policy: PolicyView{
			OpensAt:              policy.OpensAt().String(),
			ClosesAt:             policy.ClosesAt().String(),
			IntervalMinutes:      policy.IntervalMinutes(),
			Configured:           configured,
			Reminder24h:          prefs.Reminder24h,
			Reminder1h:           prefs.Reminder1h,
			AutoConfirm:          prefs.AutoConfirm,
			NotificationsEnabled: prefs.NotificationsEnabled,
		},
	}, nil
}

func reconstruct(v *TenantView) *tenant.Tenant {
	return tenant.ReconstructTenant(v.ID, v.Name, v.Email, v.Phone, v.Slug, v.PlanID, v.Active, v.ExpiresAt, v.CreatedAt)
}

func ensureOpen(v *TenantView, now time.Time) error {
	if err := reconstruct(v).EnsureAcceptsBookings(now); err != nil {
		return errs.Mark(err, shared.ErrTenantInactive)
	}
	return nil
}

func (q *tenantQueriesImpl) decorate(v *TenantView) {
	t := reconstruct(v)
	v.TrialDaysRemaining = t.TrialDaysRemaining(q.clock.Now())
	if p, err := contact.NewPhone(v.Phone); err == nil {
		v.Phone = p.Formatted()
	}
}
