package tenant

import (
	"strings"
	"time"

	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 100
	day           = 24 * time.Hour
)

var (
	ErrInvalidName    = errs.Validation("tenant name is required and must have at most 100 characters")
	ErrInvalidTrial   = errs.Validation("trial period must be positive")
	ErrInvalidPlan    = errs.Validation("plan is required")
	ErrTenantInactive = errs.New("tenant is inactive")
	ErrTenantExpired  = errs.New("tenant subscription expired")
)

// Tenant is a barbershop subscribed to the platform.
type Tenant struct {
	id           uuid.UUID
	name         string
	email        contact.Email
	phone        contact.Phone
	slug         Slug
	planID       uuid.UUID
	active       bool
	expiresAt    *time.Time
	passwordHash string
	createdAt    time.Time
}

type NewTenantParams struct {
	Name         string
	Email        string
	Phone        string
	Slug         Slug
	PlanID       uuid.UUID
	PasswordHash string
	TrialPeriod  time.Duration
}

func NewTenant(p NewTenantParams, now time.Time) (*Tenant, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	email, err := contact.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	phone, err := contact.NewPhone(p.Phone)
	if err != nil {
		return nil, err
	}
	if p.Slug.IsZero() {
		return nil, ErrInvalidSlug
	}
	if p.PlanID == uuid.Nil {
		return nil, ErrInvalidPlan
	}
	if p.TrialPeriod <= 0 {
		return nil, ErrInvalidTrial
	}

	expiresAt := now.Add(p.TrialPeriod)
	return &Tenant{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		slug:         p.Slug,
		planID:       p.PlanID,
		active:       true,
		expiresAt:    &expiresAt,
		passwordHash: p.PasswordHash,
		createdAt:    now,
	}, nil
}

// ReconstructTenant rebuilds a tenant from persisted state without validation.
func ReconstructTenant(id uuid.UUID, name, email, phone, slug string, planID uuid.UUID, active bool, expiresAt *time.Time, createdAt time.Time) *Tenant {
	e, _ := contact.NewEmail(email)
	ph, _ := contact.NewPhone(phone)
	return &Tenant{
		id:        id,
		name:      name,
		email:     e,
		phone:     ph,
		slug:      Slug(slug),
		planID:    planID,
		active:    active,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

func (t *Tenant) ID() uuid.UUID         { return t.id }
func (t *Tenant) Name() string          { return t.name }
func (t *Tenant) Email() contact.Email  { return t.email }
func (t *Tenant) Phone() contact.Phone  { return t.phone }
func (t *Tenant) Slug() Slug            { return t.slug }
func (t *Tenant) PlanID() uuid.UUID     { return t.planID }
func (t *Tenant) IsActive() bool        { return t.active }
func (t *Tenant) ExpiresAt() *time.Time { return t.expiresAt }
func (t *Tenant) PasswordHash() string  { return t.passwordHash }
func (t *Tenant) CreatedAt() time.Time  { return t.createdAt }

// IsExpired is true once now reaches the expiry instant. No expiry means never.
func (t *Tenant) IsExpired(now time.Time) bool {
	return t.expiresAt != nil && !now.Before(*t.expiresAt)
}

// EnsureAcceptsBookings rejects inactive and expired tenants.
func (t *Tenant) EnsureAcceptsBookings(now time.Time) error {
	if !t.active {
		return ErrTenantInactive
	}
	if t.IsExpired(now) {
		return ErrTenantExpired
	}
	return nil
}

// TrialDaysRemaining counts whole days left before expiry, never negative.
func (t *Tenant) TrialDaysRemaining(now time.Time) int {
	if t.expiresAt == nil {
		return 0
	}
	left := t.expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left / day)
}

// Activate marks the tenant active and, when extendDays > 0, pushes the expiry
// that many days past the later of now and the current expiry.
func (t *Tenant) Activate(now time.Time, extendDays int) {
	t.active = true
	if extendDays <= 0 {
		return
	}
	base := now
	if t.expiresAt != nil && t.expiresAt.After(now) {
		base = *t.expiresAt
	}
	next := base.Add(time.Duration(extendDays) * day)
	t.expiresAt = &next
}

func (t *Tenant) Deactivate() {
	t.active = false
}

func (t *Tenant) ChangePlan(planID uuid.UUID) error {
	if planID == uuid.Nil {
		return ErrInvalidPlan
	}
	t.planID = planID
	return nil
}
