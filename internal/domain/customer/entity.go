package customer

import (
	"strings"

	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 50

var ErrInvalidName = errs.Validation("customer name is required and must have at most 50 characters")

// Customer is identified within a tenant by phone number.
type Customer struct {
	id       uuid.UUID
	tenantID uuid.UUID
	name     string
	phone    contact.Phone
	email    *contact.Email
}

// NewCustomer validates booking-form input. An empty email is allowed.
func NewCustomer(tenantID uuid.UUID, name, phone, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	p, err := contact.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	var e *contact.Email
	if strings.TrimSpace(email) != "" {
		parsed, err := contact.NewEmail(email)
		if err != nil {
			return nil, err
		}
		e = &parsed
	}
	return &Customer{
		id:       uuid.New(),
		tenantID: tenantID,
		name:     name,
		phone:    p,
		email:    e,
	}, nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) TenantID() uuid.UUID  { return c.tenantID }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() contact.Phone { return c.phone }

func (c *Customer) Email() *string {
	if c.email == nil {
		return nil
	}
	s := c.email.String()
	return &s
}
