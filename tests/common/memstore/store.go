//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Within runs one transaction at a time against a copy of the state and
// publishes the copy only when fn succeeds. The confirmed-slot uniqueness
// rule of the bookings table is enforced on Create.
package memstore

import (
	"context"
	"sync"
	"time"

	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/domain/customer"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type slotKey struct {
	tenantID uuid.UUID
	staffID  uuid.UUID
	startsAt int64
}

type customerKey struct {
	tenantID uuid.UUID
	phone    string
}

type tenantRow struct {
	snap         shared.TenantSnapshot
	passwordHash string
}

type customerRow struct {
	id    uuid.UUID
	name  string
	phone string
	email *string
}

type state struct {
	plans     map[uuid.UUID]shared.PlanSnapshot
	tenants   map[uuid.UUID]tenantRow
	staff     map[uuid.UUID]shared.StaffSnapshot
	services  map[uuid.UUID]shared.ServiceSnapshot
	customers map[customerKey]customerRow
	bookings  map[uuid.UUID]shared.BookingSnapshot
	policies  map[uuid.UUID]schedule.Policy
	locks     map[uuid.UUID]int
	number    int64
}

func newState() *state {
	return &state{
		plans:     map[uuid.UUID]shared.PlanSnapshot{},
		tenants:   map[uuid.UUID]tenantRow{},
		staff:     map[uuid.UUID]shared.StaffSnapshot{},
		services:  map[uuid.UUID]shared.ServiceSnapshot{},
		customers: map[customerKey]customerRow{},
		bookings:  map[uuid.UUID]shared.BookingSnapshot{},
		policies:  map[uuid.UUID]schedule.Policy{},
		locks:     map[uuid.UUID]int{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.plans {
		c.plans[k] = v
	}
	for k, v := range s.tenants {
		c.tenants[k] = v
	}
	for k, v := range s.staff {
		c.staff[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.policies {
		c.policies[k] = v
	}
	for k, v := range s.locks {
		c.locks[k] = v
	}
	c.number = s.number
	return c
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu       sync.Mutex
	cur      *state
	createFn func(b *booking.Booking) error
}

func New() *Store {
	return &Store{cur: newState()}
}

// FailBookingCreate makes the next Bookings().Create calls return err until reset with nil.
func (s *Store) FailBookingCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.createFn = nil
		return
	}
	s.createFn = func(*booking.Booking) error { return err }
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.cur.clone()
	if err := fn(ctx, &memTx{st: work, createFn: s.createFn}); err != nil {
		return err
	}
	s.cur = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{st: s.snapshot()}
}

func (s *Store) snapshot() *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.clone()
}

// ----------------------------------------------------------------------------
// Seeding and inspection, all outside transactions
// ----------------------------------------------------------------------------

func (s *Store) AddPlan(p shared.PlanSnapshot) shared.PlanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.cur.plans[p.ID] = p
	return p
}

// AddTenant stores t on planID. The snapshot's Plan is filled from the store.
func (s *Store) AddTenant(t shared.TenantSnapshot, planID uuid.UUID) shared.TenantSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.Plan = s.cur.plans[planID]
	s.cur.tenants[t.ID] = tenantRow{snap: t}
	return t
}

func (s *Store) AddStaff(m shared.StaffSnapshot) shared.StaffSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.cur.staff[m.ID] = m
	return m
}

func (s *Store) AddService(svc shared.ServiceSnapshot) shared.ServiceSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	s.cur.services[svc.ID] = svc
	return svc
}

func (s *Store) Tenant(id uuid.UUID) (shared.TenantSnapshot, bool) {
	st := s.snapshot()
	row, ok := st.tenants[id]
	return row.snap, ok
}

func (s *Store) PasswordHash(id uuid.UUID) string {
	return s.snapshot().tenants[id].passwordHash
}

func (s *Store) Booking(id uuid.UUID) (shared.BookingSnapshot, bool) {
	b, ok := s.snapshot().bookings[id]
	return b, ok
}

func (s *Store) Policy(tenantID uuid.UUID) (schedule.Policy, bool) {
	p, ok := s.snapshot().policies[tenantID]
	return p, ok
}

func (s *Store) Plans() []shared.PlanSnapshot {
	st := s.snapshot()
	out := make([]shared.PlanSnapshot, 0, len(st.plans))
	for _, p := range st.plans {
		out = append(out, p)
	}
	return out
}

func (s *Store) StaffOf(tenantID uuid.UUID) []shared.StaffSnapshot {
	var out []shared.StaffSnapshot
	for _, m := range s.snapshot().staff {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) ServicesOf(tenantID uuid.UUID) []shared.ServiceSnapshot {
	var out []shared.ServiceSnapshot
	for _, svc := range s.snapshot().services {
		if svc.TenantID == tenantID {
			out = append(out, svc)
		}
	}
	return out
}

// ConfirmedAt counts confirmed bookings holding the (tenant, staff, instant) slot.
func (s *Store) ConfirmedAt(tenantID, staffID uuid.UUID, startsAt time.Time) int {
	n := 0
	for _, b := range s.snapshot().bookings {
		if b.TenantID == tenantID && b.StaffID == staffID && b.StartsAt.Equal(startsAt) &&
			b.Status == booking.StatusConfirmed.String() {
			n++
		}
	}
	return n
}

// TenantLocks counts committed transactions that locked the tenant.
func (s *Store) TenantLocks(tenantID uuid.UUID) int {
	return s.snapshot().locks[tenantID]
}

func (s *Store) CustomerCount(tenantID uuid.UUID) int {
	n := 0
	for k := range s.snapshot().customers {
		if k.tenantID == tenantID {
			n++
		}
	}
	return n
}

// ----------------------------------------------------------------------------
// Transaction
// ----------------------------------------------------------------------------

type memTx struct {
	st       *state
	createFn func(b *booking.Booking) error
}

func (t *memTx) Tenants() shared.TenantRepository     { return tenantRepo{t.st} }
func (t *memTx) Plans() shared.PlanRepository         { return planRepo{t.st} }
func (t *memTx) Staff() shared.StaffRepository        { return staffRepo{t.st} }
func (t *memTx) Services() shared.ServiceRepository   { return serviceRepo{t.st} }
func (t *memTx) Customers() shared.CustomerRepository { return customerRepo{t.st} }
func (t *memTx) Bookings() shared.BookingRepository   { return bookingRepo{st: t.st, createFn: t.createFn} }
func (t *memTx) Policies() shared.PolicyRepository    { return policyRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads           { return &reads{st: t.st} }

type tenantRepo struct{ st *state }

func (r tenantRepo) Create(_ context.Context, t *tenant.Tenant) error {
	for _, row := range r.st.tenants {
		if row.snap.Email == t.Email().String() || row.snap.Slug == t.Slug().String() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "tenant exists")
		}
	}
	plan, ok := r.st.plans[t.PlanID()]
	if !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "unknown plan")
	}
	r.st.tenants[t.ID()] = tenantRow{
		snap: shared.TenantSnapshot{
			ID:        t.ID(),
			Name:      t.Name(),
			Email:     t.Email().String(),
			Phone:     t.Phone().Digits(),
			Slug:      t.Slug().String(),
			Active:    t.IsActive(),
			ExpiresAt: t.ExpiresAt(),
			CreatedAt: t.CreatedAt(),
			Plan:      plan,
		},
		passwordHash: t.PasswordHash(),
	}
	return nil
}

func (r tenantRepo) Update(_ context.Context, t *tenant.Tenant) error {
	row, ok := r.st.tenants[t.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "tenant")
	}
	plan, ok := r.st.plans[t.PlanID()]
	if !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "unknown plan")
	}
	row.snap.Active = t.IsActive()
	row.snap.ExpiresAt = t.ExpiresAt()
	row.snap.Plan = plan
	r.st.tenants[t.ID()] = row
	return nil
}

type planRepo struct{ st *state }

func (r planRepo) UpsertByName(_ context.Context, p tenant.Plan) (uuid.UUID, error) {
	for id, existing := range r.st.plans {
		if existing.Name == p.Name {
			r.st.plans[id] = shared.PlanSnapshot{
				ID: id, Name: p.Name, MonthlyPrice: p.MonthlyPrice,
				StaffLimit: p.StaffLimit, BookingLimit: p.BookingLimit, Features: p.Features,
			}
			return id, nil
		}
	}
	id := uuid.New()
	r.st.plans[id] = shared.PlanSnapshot{
		ID: id, Name: p.Name, MonthlyPrice: p.MonthlyPrice,
		StaffLimit: p.StaffLimit, BookingLimit: p.BookingLimit, Features: p.Features,
	}
	return id, nil
}

type staffRepo struct{ st *state }

func (r staffRepo) Create(_ context.Context, m *staff.Member) error {
	r.st.staff[m.ID()] = staffSnapshot(m)
	return nil
}

func (r staffRepo) Update(_ context.Context, m *staff.Member) error {
	if _, ok := r.st.staff[m.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "staff")
	}
	r.st.staff[m.ID()] = staffSnapshot(m)
	return nil
}

func staffSnapshot(m *staff.Member) shared.StaffSnapshot {
	return shared.StaffSnapshot{
		ID: m.ID(), TenantID: m.TenantID(), Name: m.Name(), Specialty: m.Specialty(),
		Active: m.IsActive(), Commission: m.Commission(), CreatedAt: m.CreatedAt(),
	}
}

type serviceRepo struct{ st *state }

func (r serviceRepo) Create(_ context.Context, s *catalog.Service) error {
	r.st.services[s.ID()] = shared.ServiceSnapshot{
		ID: s.ID(), TenantID: s.TenantID(), Name: s.Name(), DurationMinutes: s.DurationMinutes(),
		Price: s.Price(), Active: s.IsActive(), Description: s.Description(),
	}
	return nil
}

type customerRepo struct{ st *state }

func (r customerRepo) Upsert(_ context.Context, c *customer.Customer) (uuid.UUID, error) {
	key := customerKey{tenantID: c.TenantID(), phone: c.Phone().Digits()}
	row, ok := r.st.customers[key]
	if !ok {
		row.id = c.ID()
	}
	row.name = c.Name()
	row.phone = c.Phone().Digits()
	row.email = c.Email()
	r.st.customers[key] = row
	return row.id, nil
}

func (st *state) customerByID(id uuid.UUID) customerRow {
	for _, row := range st.customers {
		if row.id == id {
			return row
		}
	}
	return customerRow{}
}

type bookingRepo struct {
	st       *state
	createFn func(b *booking.Booking) error
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	if r.createFn != nil {
		if err := r.createFn(b); err != nil {
			return 0, err
		}
	}
	key := slotKey{tenantID: b.TenantID(), staffID: b.StaffID(), startsAt: b.StartsAt().UnixNano()}
	for _, existing := range r.st.bookings {
		if existing.Status == booking.StatusConfirmed.String() &&
			(slotKey{existing.TenantID, existing.StaffID, existing.StartsAt.UnixNano()}) == key {
			return 0, infra.NewRepoErr(infra.KindConflict, "bookings_confirmed_slot_uniq")
		}
	}
	r.st.number++
	cust := r.st.customerByID(b.CustomerID())
	r.st.bookings[b.ID()] = shared.BookingSnapshot{
		ID: b.ID(), Number: r.st.number, TenantID: b.TenantID(), StaffID: b.StaffID(),
		ServiceID: b.ServiceID(), CustomerID: b.CustomerID(),
		CustomerName: cust.name, CustomerPhone: cust.phone,
		StartsAt: b.StartsAt(), Status: b.Status().String(), Notes: b.Notes(),
		CreatedAt: b.CreatedAt(), UpdatedAt: b.UpdatedAt(),
	}
	return r.st.number, nil
}

func (r bookingRepo) LockByID(_ context.Context, tenantID, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.st.bookings[bookingID]
	if !ok || b.TenantID != tenantID {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking")
	}
	return &b, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	row, ok := r.st.bookings[b.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking")
	}
	row.Status = b.Status().String()
	row.UpdatedAt = b.UpdatedAt()
	r.st.bookings[b.ID()] = row
	return nil
}

func (r bookingRepo) ExistsConfirmed(_ context.Context, tenantID, staffID uuid.UUID, startsAt time.Time) (bool, error) {
	for _, b := range r.st.bookings {
		if b.TenantID == tenantID && b.StaffID == staffID && b.StartsAt.Equal(startsAt) &&
			b.Status == booking.StatusConfirmed.String() {
			return true, nil
		}
	}
	return false, nil
}

func (r bookingRepo) CountConfirmedSince(_ context.Context, tenantID uuid.UUID, since time.Time) (int, error) {
	n := 0
	for _, b := range r.st.bookings {
		if b.TenantID == tenantID && b.Status == booking.StatusConfirmed.String() && !b.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type policyRepo struct{ st *state }

func (r policyRepo) Upsert(_ context.Context, tenantID uuid.UUID, p schedule.Policy) error {
	r.st.policies[tenantID] = p
	return nil
}

// ----------------------------------------------------------------------------
// Reads
// ----------------------------------------------------------------------------

type reads struct{ st *state }

func (r *reads) TenantByID(_ context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	row, ok := r.st.tenants[id]
	if !ok {
		return nil, shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "tenant"), shared.ErrTenantNotFound)
	}
	snap := row.snap
	return &snap, nil
}

// LockTenant only counts; Within already runs one transaction at a time.
func (r *reads) LockTenant(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.tenants[id]; !ok {
		return shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "tenant"), shared.ErrTenantNotFound)
	}
	r.st.locks[id]++
	return nil
}

func (r *reads) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, row := range r.st.tenants {
		if row.snap.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *reads) SlugTaken(_ context.Context, slug string) (bool, error) {
	for _, row := range r.st.tenants {
		if row.snap.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *reads) PlanByID(_ context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	p, ok := r.st.plans[id]
	if !ok {
		return nil, shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "plan"), shared.ErrPlanNotFound)
	}
	return &p, nil
}

func (r *reads) CheapestPlan(_ context.Context) (*shared.PlanSnapshot, error) {
	var best *shared.PlanSnapshot
	for _, p := range r.st.plans {
		p := p
		if best == nil || p.MonthlyPrice.LessThan(best.MonthlyPrice) ||
			(p.MonthlyPrice.Equal(best.MonthlyPrice) && p.Name < best.Name) {
			best = &p
		}
	}
	if best == nil {
		return nil, shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "plan"), shared.ErrPlanNotFound)
	}
	return best, nil
}

func (r *reads) StaffForUpdate(_ context.Context, tenantID, staffID uuid.UUID) (*shared.StaffSnapshot, error) {
	m, ok := r.st.staff[staffID]
	if !ok || m.TenantID != tenantID {
		return nil, shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "staff"), shared.ErrStaffNotFound)
	}
	return &m, nil
}

func (r *reads) ServiceByID(_ context.Context, tenantID, serviceID uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, ok := r.st.services[serviceID]
	if !ok || s.TenantID != tenantID {
		return nil, shared.MarkNotFound(infra.NewRepoErr(infra.KindNotFound, "service"), shared.ErrServiceNotFound)
	}
	return &s, nil
}

func (r *reads) CountActiveStaff(_ context.Context, tenantID uuid.UUID) (int, error) {
	n := 0
	for _, m := range r.st.staff {
		if m.TenantID == tenantID && m.Active {
			n++
		}
	}
	return n, nil
}
