package catalog

import (
	"strings"
	"time"

	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinDurationMinutes = 15
	MaxNameLength      = 50
)

var (
	ErrInvalidName      = errs.Validation("service name is required and must have at most 50 characters")
	ErrDurationTooShort = errs.Validation("service duration must be at least 15 minutes")
	ErrNegativePrice    = errs.Validation("service price must not be negative")
	ErrInvalidTenant    = errs.Validation("service requires a tenant")
	ErrForeignTenant    = errs.Validation("service belongs to another tenant")
	ErrServiceInactive  = errs.Validation("service is not offered anymore")
)

// Service is an offering in a tenant's catalog. Bookings reference it by id,
// so later price edits never reach past bookings.
type Service struct {
	id              uuid.UUID
	tenantID        uuid.UUID
	name            string
	durationMinutes int
	price           decimal.Decimal
	active          bool
	description     string
}

func NewService(tenantID uuid.UUID, name string, durationMinutes int, price decimal.Decimal, description string) (*Service, error) {
	if tenantID == uuid.Nil {
		return nil, ErrInvalidTenant
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	if durationMinutes < MinDurationMinutes {
		return nil, ErrDurationTooShort
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:              uuid.New(),
		tenantID:        tenantID,
		name:            name,
		durationMinutes: durationMinutes,
		price:           price.Round(2),
		active:          true,
		description:     strings.TrimSpace(description),
	}, nil
}

func ReconstructService(id, tenantID uuid.UUID, name string, durationMinutes int, price decimal.Decimal, active bool, description string) *Service {
	return &Service{
		id:              id,
		tenantID:        tenantID,
		name:            name,
		durationMinutes: durationMinutes,
		price:           price,
		active:          active,
		description:     description,
	}
}

// Defaults seeded for every newly registered tenant.
func Defaults(tenantID uuid.UUID) []*Service {
	specs := []struct {
		name     string
		duration int
		price    string
	}{
		{"Corte Social", 30, "25.00"},
		{"Barba", 30, "20.00"},
		{"Corte + Barba", 60, "40.00"},
	}
	out := make([]*Service, 0, len(specs))
	for _, s := range specs {
		svc, err := NewService(tenantID, s.name, s.duration, decimal.RequireFromString(s.price), "")
		if err != nil {
			// static data; only reachable with a nil tenant
			continue
		}
		out = append(out, svc)
	}
	return out
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) TenantID() uuid.UUID    { return s.tenantID }
func (s *Service) Name() string           { return s.name }
func (s *Service) DurationMinutes() int   { return s.durationMinutes }
func (s *Service) Price() decimal.Decimal { return s.price }
func (s *Service) IsActive() bool         { return s.active }
func (s *Service) Description() string    { return s.description }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

func (s *Service) EnsureOwnedBy(tenantID uuid.UUID) error {
	if s.tenantID != tenantID {
		return ErrForeignTenant
	}
	return nil
}

// EnsureBookable is EnsureOwnedBy plus the active flag.
func (s *Service) EnsureBookable(tenantID uuid.UUID) error {
	if err := s.EnsureOwnedBy(tenantID); err != nil {
		return err
	}
	if !s.active {
		return ErrServiceInactive
	}
	return nil
}
