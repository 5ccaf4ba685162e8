package staff

import (
	"strings"
	"time"

	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength      = 50
	MaxSpecialtyLength = 100
)

var (
	DefaultCommission = decimal.NewFromInt(50)

	ErrInvalidName       = errs.Validation("staff name is required and must have at most 50 characters")
	ErrInvalidSpecialty  = errs.Validation("specialty must have at most 100 characters")
	ErrInvalidCommission = errs.Validation("commission must be between 0 and 100 percent")
	ErrInvalidTenant     = errs.Validation("staff member requires a tenant")
	ErrStaffInactive     = errs.Validation("staff member is inactive")
	ErrForeignTenant     = errs.Validation("staff member belongs to another tenant")
)

// Member is a bookable barber within one tenant.
type Member struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	name       string
	specialty  string
	active     bool
	commission decimal.Decimal
	createdAt  time.Time
}

func NewMember(tenantID uuid.UUID, name, specialty string, commission *decimal.Decimal, now time.Time) (*Member, error) {
	if tenantID == uuid.Nil {
		return nil, ErrInvalidTenant
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	specialty = strings.TrimSpace(specialty)
	if len(specialty) > MaxSpecialtyLength {
		return nil, ErrInvalidSpecialty
	}
	c := patch.Coalesce(commission, DefaultCommission)
	if c.IsNegative() || c.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidCommission
	}

	return &Member{
		id:         uuid.New(),
		tenantID:   tenantID,
		name:       name,
		specialty:  specialty,
		active:     true,
		commission: c,
		createdAt:  now,
	}, nil
}

func ReconstructMember(id, tenantID uuid.UUID, name, specialty string, active bool, commission decimal.Decimal, createdAt time.Time) *Member {
	return &Member{
		id:         id,
		tenantID:   tenantID,
		name:       name,
		specialty:  specialty,
		active:     active,
		commission: commission,
		createdAt:  createdAt,
	}
}

func (m *Member) ID() uuid.UUID               { return m.id }
func (m *Member) TenantID() uuid.UUID         { return m.tenantID }
func (m *Member) Name() string                { return m.name }
func (m *Member) Specialty() string           { return m.specialty }
func (m *Member) IsActive() bool              { return m.active }
func (m *Member) Commission() decimal.Decimal { return m.commission }
func (m *Member) CreatedAt() time.Time        { return m.createdAt }

// EnsureBookable fails unless the member is active and owned by tenantID.
func (m *Member) EnsureBookable(tenantID uuid.UUID) error {
	if m.tenantID != tenantID {
		return ErrForeignTenant
	}
	if !m.active {
		return ErrStaffInactive
	}
	return nil
}

func (m *Member) Deactivate() {
	m.active = false
}
