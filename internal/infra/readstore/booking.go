package readstore

import (
	"context"
	"fmt"
	"strings"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const selectBookingViewSQL = `
SELECT b.id, b.number, b.tenant_id,
       st.id, st.name,
       sv.id, sv.name, sv.duration_minutes, sv.price,
       c.id, c.name, c.phone, c.email,
       b.starts_at, b.status, b.notes, b.created_at, b.updated_at
FROM bookings b
JOIN staff_members st ON st.id = b.staff_id AND st.tenant_id = b.tenant_id
JOIN services sv ON sv.id = b.service_id AND sv.tenant_id = b.tenant_id
JOIN customers c ON c.id = b.customer_id AND c.tenant_id = b.tenant_id`

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v     queries.BookingView
		email pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.Number, &v.TenantID,
		&v.StaffID, &v.StaffName,
		&v.ServiceID, &v.ServiceName, &v.DurationMinutes, &v.Price,
		&v.CustomerID, &v.CustomerName, &v.CustomerPhone, &email,
		&v.StartsAt, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.CustomerEmail = pgconv.StringPtrFromPgtype(email)
	v.StartsAt = v.StartsAt.UTC()
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, tenantID, bookingID uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, selectBookingViewSQL+`
		WHERE b.tenant_id = $1 AND b.id = $2`, tenantID, bookingID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return v, nil
}

func (r *BookingReadStore) List(ctx context.Context, tenantID uuid.UUID, filter queries.BookingFilter, after *queries.BookingKey, limit int) ([]queries.BookingView, error) {
	conds := []string{"b.tenant_id = $1"}
	args := []any{tenantID}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.Day.IsZero() {
		conds = append(conds, "b.starts_at >= "+next(filter.Day)+" AND b.starts_at < "+next(filter.Day.AddDate(0, 0, 1)))
	}
	if filter.Status != "" {
		conds = append(conds, "b.status = "+next(filter.Status))
	}
	if after != nil {
		conds = append(conds, "(b.starts_at, b.id) > ("+next(after.StartsAt)+", "+next(after.ID)+")")
	}

	query := selectBookingViewSQL + `
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY b.starts_at, b.id
		LIMIT ` + next(limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := []queries.BookingView{}
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}
