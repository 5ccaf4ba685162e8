package readstore

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) PolicyFor(ctx context.Context, tenantID uuid.UUID) (schedule.Policy, bool, error) {
	var (
		opens, closes pgtype.Time
		interval      int
		prefs         schedule.Preferences
	)
	err := r.db.QueryRow(ctx, `
		SELECT opens_at, closes_at, interval_minutes,
		       reminder_24h, reminder_1h, auto_confirm, notifications_enabled
		FROM tenant_policies
		WHERE tenant_id = $1`, tenantID,
	).Scan(&opens, &closes, &interval, &prefs.Reminder24h, &prefs.Reminder1h, &prefs.AutoConfirm, &prefs.NotificationsEnabled)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return schedule.DefaultPolicy(), false, nil
		}
		return schedule.Policy{}, false, infra.WrapRepoErr("failed to load operating hours", err)
	}

	policy, err := schedule.NewPolicy(
		schedule.TimeOfDay(pgconv.MinutesFromPgTime(opens)),
		schedule.TimeOfDay(pgconv.MinutesFromPgTime(closes)),
		interval, prefs)
	if err != nil {
		// the table CHECKs make this unreachable unless rows were edited by hand
		return schedule.Policy{}, false, infra.WrapRepoErr("stored operating hours are invalid", err, infra.KindDBFailure)
	}
	return policy, true, nil
}

func (r *AvailabilityReadStore) StaffByID(ctx context.Context, tenantID, staffID uuid.UUID) (*queries.StaffView, error) {
	var v queries.StaffView
	err := r.db.QueryRow(ctx, `
		SELECT id, tenant_id, name, specialty, active, commission
		FROM staff_members
		WHERE tenant_id = $1 AND id = $2`, tenantID, staffID,
	).Scan(&v.ID, &v.TenantID, &v.Name, &v.Specialty, &v.Active, &v.Commission)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff member", err)
	}
	return &v, nil
}

func (r *AvailabilityReadStore) BookedInstants(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `
		SELECT starts_at
		FROM bookings
		WHERE tenant_id = $1 AND staff_id = $2 AND status = 'confirmed'
		  AND starts_at >= $3 AND starts_at < $4
		ORDER BY starts_at`, tenantID, staffID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked instants", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked instant", err)
		}
		out = append(out, t.UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked instants", err)
	}
	return out, nil
}
