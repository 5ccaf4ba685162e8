//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func PlanIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var planID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM plans WHERE name = $1", name).Scan(&planID)
	require.NoError(t, err)
	return planID
}

// CreateTestPlan inserts a plan with a monthly booking limit and returns its name.
func CreateTestPlan(t *testing.T, db DBLike, bookingLimit int) string {
	t.Helper()

	name := "Plano " + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	_, err := db.Exec(context.Background(), `
		INSERT INTO plans (name, monthly_price, staff_limit, booking_limit, features)
		VALUES ($1, 99.00, 5, $2, '{agendamento_24_7}')`, name, bookingLimit)
	require.NoError(t, err)
	return name
}

// CreateTestTenant inserts an active tenant on the named plan. A nil expiresAt means no expiry.
func CreateTestTenant(t *testing.T, db DBLike, planName string, expiresAt *time.Time) uuid.UUID {
	t.Helper()

	tenantID := uuid.New()
	suffix := strings.ReplaceAll(tenantID.String(), "-", "")[:12]
	_, err := db.Exec(context.Background(), `
		INSERT INTO tenants (id, name, email, phone, slug, plan_id, active, expires_at, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8)`,
		tenantID, "Barbearia "+suffix, suffix+"@example.com", "11987654321", "barbearia-"+suffix,
		PlanIDByName(t, db, planName), expiresAt, testPasswordHash)
	require.NoError(t, err)
	return tenantID
}

func SetTenantActive(t *testing.T, db DBLike, tenantID uuid.UUID, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE tenants SET active = $2 WHERE id = $1", tenantID, active)
	require.NoError(t, err)
}

func CreateTestStaff(t *testing.T, db DBLike, tenantID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO staff_members (id, tenant_id, name, specialty, active) VALUES ($1, $2, $3, 'Cortes', true)",
		staffID, tenantID, name)
	require.NoError(t, err)
	return staffID
}

func CreateTestService(t *testing.T, db DBLike, tenantID uuid.UUID, name string, durationMinutes int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, tenant_id, name, duration_minutes, price, active) VALUES ($1, $2, $3, $4, 35.00, true)",
		serviceID, tenantID, name, durationMinutes)
	require.NoError(t, err)
	return serviceID
}

func SetTestPolicy(t *testing.T, db DBLike, tenantID uuid.UUID, opensAt, closesAt string, intervalMinutes int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO tenant_policies (tenant_id, opens_at, closes_at, interval_minutes)
		VALUES ($1, $2::time, $3::time, $4)
		ON CONFLICT (tenant_id) DO UPDATE
		SET opens_at = EXCLUDED.opens_at, closes_at = EXCLUDED.closes_at, interval_minutes = EXCLUDED.interval_minutes`,
		tenantID, opensAt, closesAt, intervalMinutes)
	require.NoError(t, err)
}

func CountConfirmed(t *testing.T, db DBLike, tenantID, staffID uuid.UUID, startsAt time.Time) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE tenant_id = $1 AND staff_id = $2 AND starts_at = $3 AND status = 'confirmed'",
		tenantID, staffID, startsAt).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the plan catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO plans (name, monthly_price, staff_limit, booking_limit, features) VALUES
		    ('Start', 150.00, 2, 100, '{agendamento_24_7}'),
		    ('Profissional', 297.00, 5, 300, '{agendamento_24_7}'),
		    ('Enterprise', 497.00, 20, 1000, '{todos_recursos}')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
