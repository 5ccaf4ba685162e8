package repository

import (
	"context"

	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
)

type TenantRepository struct {
	db db.DBTX
}

func NewTenantRepository(dbtx db.DBTX) *TenantRepository {
	return &TenantRepository{db: dbtx}
}

const insertTenantSQL = `
INSERT INTO tenants (id, name, email, phone, slug, plan_id, active, expires_at, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := r.db.Exec(ctx, insertTenantSQL,
		t.ID(), t.Name(), t.Email().String(), t.Phone().Digits(), t.Slug().String(),
		t.PlanID(), t.IsActive(), t.ExpiresAt(), t.PasswordHash(), t.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create tenant", err)
	}
	return nil
}

const updateTenantSQL = `
UPDATE tenants
SET active = $2, expires_at = $3, plan_id = $4, updated_at = now()
WHERE id = $1`

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	tag, err := r.db.Exec(ctx, updateTenantSQL, t.ID(), t.IsActive(), t.ExpiresAt(), t.PlanID())
	if err != nil {
		return infra.WrapRepoErr("failed to update tenant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return nil
}
