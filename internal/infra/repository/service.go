package repository

import (
	"context"

	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO services (id, tenant_id, name, duration_minutes, price, active, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID(), s.TenantID(), s.Name(), s.DurationMinutes(), s.Price(), s.IsActive(), s.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}
