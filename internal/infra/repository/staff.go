package repository

import (
	"context"

	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Member) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO staff_members (id, tenant_id, name, specialty, active, commission, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID(), m.TenantID(), m.Name(), m.Specialty(), m.IsActive(), m.Commission(), m.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create staff member", err)
	}
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, m *staff.Member) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE staff_members
		SET name = $3, specialty = $4, active = $5, commission = $6
		WHERE tenant_id = $1 AND id = $2`,
		m.TenantID(), m.ID(), m.Name(), m.Specialty(), m.IsActive(), m.Commission())
	if err != nil {
		return infra.WrapRepoErr("failed to update staff member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff member not found", nil, infra.KindNotFound)
	}
	return nil
}
