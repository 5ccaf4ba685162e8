package readstore

import (
	"context"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TenantReadStore struct {
	db db.DBTX
}

func NewTenantReadStore(dbtx db.DBTX) *TenantReadStore {
	return &TenantReadStore{db: dbtx}
}

const tenantColumns = `
	t.id, t.name, t.email, t.phone, t.slug, t.active, t.expires_at, t.created_at,
	p.id, p.name, p.monthly_price, p.staff_limit, p.booking_limit, p.features`

const selectTenantSQL = `SELECT` + tenantColumns + `
FROM tenants t
JOIN plans p ON p.id = t.plan_id`

func scanTenant(row pgx.Row) (*shared.TenantSnapshot, error) {
	var (
		s         shared.TenantSnapshot
		expiresAt pgtype.Timestamptz
		limit     pgtype.Int4
	)
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Slug, &s.Active, &expiresAt, &s.CreatedAt,
		&s.Plan.ID, &s.Plan.Name, &s.Plan.MonthlyPrice, &s.Plan.StaffLimit, &limit, &s.Plan.Features,
	)
	if err != nil {
		return nil, err
	}
	s.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	s.Plan.BookingLimit = pgconv.IntPtrFromPgtype(limit)
	return &s, nil
}

// Snapshot is the command-side view of a tenant with its plan limits.
func (r *TenantReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	s, err := scanTenant(r.db.QueryRow(ctx, selectTenantSQL+` WHERE t.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tenant by ID", err)
	}
	return s, nil
}

// Lock holds the tenant row until the surrounding transaction ends.
func (r *TenantReadStore) Lock(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM tenants WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock tenant", err)
	}
	return nil
}

func (r *TenantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TenantView, error) {
	s, err := r.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	v := snapshotToView(s)
	return &v, nil
}

func (r *TenantReadStore) FindBySlug(ctx context.Context, slug string) (*queries.TenantView, error) {
	s, err := scanTenant(r.db.QueryRow(ctx, selectTenantSQL+` WHERE t.slug = $1`, slug))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tenant by slug", err)
	}
	v := snapshotToView(s)
	return &v, nil
}

func (r *TenantReadStore) List(ctx context.Context, limit, offset int) ([]queries.TenantView, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tenants`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count tenants", err)
	}

	rows, err := r.db.Query(ctx, selectTenantSQL+`
		ORDER BY t.created_at DESC, t.id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list tenants", err)
	}
	defer rows.Close()

	items := make([]queries.TenantView, 0, limit)
	for rows.Next() {
		s, err := scanTenant(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan tenant", err)
		}
		items = append(items, snapshotToView(s))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate tenants", err)
	}
	return items, total, nil
}

func (r *TenantReadStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tenants WHERE email = $1)`, email).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check tenant email", err)
	}
	return taken, nil
}

func (r *TenantReadStore) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var taken bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tenants WHERE slug = $1)`, slug).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check tenant slug", err)
	}
	return taken, nil
}

const selectPlanSQL = `SELECT id, name, monthly_price, staff_limit, booking_limit, features FROM plans`

func scanPlan(row pgx.Row) (*shared.PlanSnapshot, error) {
	var (
		p     shared.PlanSnapshot
		limit pgtype.Int4
	)
	if err := row.Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.StaffLimit, &limit, &p.Features); err != nil {
		return nil, err
	}
	p.BookingLimit = pgconv.IntPtrFromPgtype(limit)
	return &p, nil
}

func (r *TenantReadStore) PlanByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	p, err := scanPlan(r.db.QueryRow(ctx, selectPlanSQL+` WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan by ID", err)
	}
	return p, nil
}

func (r *TenantReadStore) CheapestPlan(ctx context.Context) (*shared.PlanSnapshot, error) {
	p, err := scanPlan(r.db.QueryRow(ctx, selectPlanSQL+` ORDER BY monthly_price, name LIMIT 1`))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no plans configured", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find default plan", err)
	}
	return p, nil
}

func (r *TenantReadStore) ListPlans(ctx context.Context) ([]queries.PlanView, error) {
	rows, err := r.db.Query(ctx, selectPlanSQL+` ORDER BY monthly_price, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	var out []queries.PlanView
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan", err)
		}
		out = append(out, queries.PlanView{
			ID:           p.ID,
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			StaffLimit:   p.StaffLimit,
			BookingLimit: p.BookingLimit,
			Features:     p.Features,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate plans", err)
	}
	return out, nil
}

func snapshotToView(s *shared.TenantSnapshot) queries.TenantView {
	return queries.TenantView{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Slug:      s.Slug,
		PlanID:    s.Plan.ID,
		PlanName:  s.Plan.Name,
		Active:    s.Active,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}
