package readstore

import (
	"context"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

// StaffForUpdate takes a row lock when called inside a transaction.
func (r *CatalogReadStore) StaffForUpdate(ctx context.Context, tenantID, staffID uuid.UUID) (*shared.StaffSnapshot, error) {
	var s shared.StaffSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, tenant_id, name, specialty, active, commission, created_at
		FROM staff_members
		WHERE tenant_id = $1 AND id = $2
		FOR UPDATE`, tenantID, staffID,
	).Scan(&s.ID, &s.TenantID, &s.Name, &s.Specialty, &s.Active, &s.Commission, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock staff member", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) ServiceByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*shared.ServiceSnapshot, error) {
	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, tenant_id, name, duration_minutes, price, active, description
		FROM services
		WHERE tenant_id = $1 AND id = $2`, tenantID, serviceID,
	).Scan(&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes, &s.Price, &s.Active, &s.Description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) CountActiveStaff(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM staff_members WHERE tenant_id = $1 AND active`, tenantID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count staff", err)
	}
	return n, nil
}

func (r *CatalogReadStore) ActiveStaff(ctx context.Context, tenantID uuid.UUID) ([]queries.StaffView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tenant_id, name, specialty, active, commission
		FROM staff_members
		WHERE tenant_id = $1 AND active
		ORDER BY name, id`, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	out := []queries.StaffView{}
	for rows.Next() {
		var v queries.StaffView
		if err := rows.Scan(&v.ID, &v.TenantID, &v.Name, &v.Specialty, &v.Active, &v.Commission); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff", err)
	}
	return out, nil
}

func (r *CatalogReadStore) ActiveServices(ctx context.Context, tenantID uuid.UUID) ([]queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, duration_minutes, price, description
		FROM services
		WHERE tenant_id = $1 AND active
		ORDER BY name, id`, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	out := []queries.ServiceView{}
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.DurationMinutes, &v.Price, &v.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return out, nil
}
