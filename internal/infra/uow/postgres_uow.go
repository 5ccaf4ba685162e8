package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"barbershop-booking/internal/infra/db"
	"barbershop-booking/internal/infra/readstore"
	"barbershop-booking/internal/infra/repository"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted plus the staff row lock and the partial unique index is
// enough to serialize reservations on one slot.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	tenantRepo   shared.TenantRepository
	planRepo     shared.PlanRepository
	staffRepo    shared.StaffRepository
	serviceRepo  shared.ServiceRepository
	customerRepo shared.CustomerRepository
	bookingRepo  shared.BookingRepository
	policyRepo   shared.PolicyRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Tenants() shared.TenantRepository {
	if t.tenantRepo == nil {
		t.tenantRepo = repository.NewTenantRepository(t.dbtx)
	}
	return t.tenantRepo
}

func (t *pgTx) Plans() shared.PlanRepository {
	if t.planRepo == nil {
		t.planRepo = repository.NewPlanRepository(t.dbtx)
	}
	return t.planRepo
}

func (t *pgTx) Staff() shared.StaffRepository {
	if t.staffRepo == nil {
		t.staffRepo = repository.NewStaffRepository(t.dbtx)
	}
	return t.staffRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.dbtx)
	}
	return t.serviceRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Policies() shared.PolicyRepository {
	if t.policyRepo == nil {
		t.policyRepo = repository.NewPolicyRepository(t.dbtx)
	}
	return t.policyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

// commandReads maps readstore rows onto write-side snapshots.
type commandReads struct {
	tenants *readstore.TenantReadStore
	catalog *readstore.CatalogReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		tenants: readstore.NewTenantReadStore(dbtx),
		catalog: readstore.NewCatalogReadStore(dbtx),
	}
}

func (r *commandReads) TenantByID(ctx context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	snap, err := r.tenants.Snapshot(ctx, id)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	return snap, nil
}

func (r *commandReads) LockTenant(ctx context.Context, id uuid.UUID) error {
	if err := r.tenants.Lock(ctx, id); err != nil {
		return shared.NotFoundOr(err, shared.ErrTenantNotFound)
	}
	return nil
}

func (r *commandReads) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.tenants.EmailTaken(ctx, email)
}

func (r *commandReads) SlugTaken(ctx context.Context, slug string) (bool, error) {
	return r.tenants.SlugTaken(ctx, slug)
}

func (r *commandReads) PlanByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	p, err := r.tenants.PlanByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrPlanNotFound)
	}
	return p, nil
}

func (r *commandReads) CheapestPlan(ctx context.Context) (*shared.PlanSnapshot, error) {
	p, err := r.tenants.CheapestPlan(ctx)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrPlanNotFound)
	}
	return p, nil
}

func (r *commandReads) StaffForUpdate(ctx context.Context, tenantID, staffID uuid.UUID) (*shared.StaffSnapshot, error) {
	s, err := r.catalog.StaffForUpdate(ctx, tenantID, staffID)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrStaffNotFound)
	}
	return s, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, tenantID, serviceID uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, err := r.catalog.ServiceByID(ctx, tenantID, serviceID)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrServiceNotFound)
	}
	return s, nil
}

func (r *commandReads) CountActiveStaff(ctx context.Context, tenantID uuid.UUID) (int, error) {
	return r.catalog.CountActiveStaff(ctx, tenantID)
}
