package request

import (
	"time"

	"barbershop-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}

type CreateBookingRequest struct {
	StaffID   uuid.UUID       `json:"staff_id" binding:"required"`
	ServiceID uuid.UUID       `json:"service_id" binding:"required"`
	StartsAt  time.Time       `json:"starts_at" binding:"required"`
	Customer  CustomerRequest `json:"customer" binding:"required"`
	Notes     string          `json:"notes,omitempty" binding:"max=500"`
}

func (r CreateBookingRequest) ToInput(tenantID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		TenantID:  tenantID,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Customer: commands.CustomerInput{
			Name:  r.Customer.Name,
			Phone: r.Customer.Phone,
			Email: r.Customer.Email,
		},
		StartsAt: r.StartsAt.UTC(),
		Notes:    r.Notes,
	}
}
