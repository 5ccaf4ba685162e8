package repository

import (
	"context"

	"barbershop-booking/internal/domain/customer"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

// Returning customers keep their id; a new email only replaces the stored one when given.
const upsertCustomerSQL = `
INSERT INTO customers (id, tenant_id, name, phone, email)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tenant_id, phone) DO UPDATE
SET name       = EXCLUDED.name,
    email      = COALESCE(EXCLUDED.email, customers.email),
    updated_at = now()
RETURNING id`

func (r *CustomerRepository) Upsert(ctx context.Context, c *customer.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertCustomerSQL, c.ID(), c.TenantID(), c.Name(), c.Phone().Digits(), c.Email()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}
