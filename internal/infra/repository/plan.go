package repository

import (
	"context"

	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"

	"github.com/google/uuid"
)

type PlanRepository struct {
	db db.DBTX
}

func NewPlanRepository(dbtx db.DBTX) *PlanRepository {
	return &PlanRepository{db: dbtx}
}

const upsertPlanSQL = `
INSERT INTO plans (name, monthly_price, staff_limit, booking_limit, features)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET monthly_price = EXCLUDED.monthly_price,
    staff_limit   = EXCLUDED.staff_limit,
    booking_limit = EXCLUDED.booking_limit,
    features      = EXCLUDED.features,
    updated_at    = now()
RETURNING id`

func (r *PlanRepository) UpsertByName(ctx context.Context, p tenant.Plan) (uuid.UUID, error) {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertPlanSQL, p.Name, p.MonthlyPrice, p.StaffLimit, p.BookingLimit, features).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert plan", err)
	}
	return id, nil
}
