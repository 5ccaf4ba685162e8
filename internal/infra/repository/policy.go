package repository

import (
	"context"

	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PolicyRepository struct {
	db db.DBTX
}

func NewPolicyRepository(dbtx db.DBTX) *PolicyRepository {
	return &PolicyRepository{db: dbtx}
}

const upsertPolicySQL = `
INSERT INTO tenant_policies (tenant_id, opens_at, closes_at, interval_minutes,
                             reminder_24h, reminder_1h, auto_confirm, notifications_enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (tenant_id) DO UPDATE
SET opens_at              = EXCLUDED.opens_at,
    closes_at             = EXCLUDED.closes_at,
    interval_minutes      = EXCLUDED.interval_minutes,
    reminder_24h          = EXCLUDED.reminder_24h,
    reminder_1h           = EXCLUDED.reminder_1h,
    auto_confirm          = EXCLUDED.auto_confirm,
    notifications_enabled = EXCLUDED.notifications_enabled,
    updated_at            = now()`

func (r *PolicyRepository) Upsert(ctx context.Context, tenantID uuid.UUID, p schedule.Policy) error {
	prefs := p.Preferences()
	_, err := r.db.Exec(ctx, upsertPolicySQL,
		tenantID, pgconv.MinutesToPgTime(int(p.OpensAt())), pgconv.MinutesToPgTime(int(p.ClosesAt())), p.IntervalMinutes(),
		prefs.Reminder24h, prefs.Reminder1h, prefs.AutoConfirm, prefs.NotificationsEnabled)
	if err != nil {
		return infra.WrapRepoErr("failed to save operating hours", err)
	}
	return nil
}
