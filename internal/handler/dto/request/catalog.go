package request

import (
	"barbershop-booking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	Name       string           `json:"name" binding:"required,max=50"`
	Specialty  string           `json:"specialty" binding:"max=100"`
	Commission *decimal.Decimal `json:"commission,omitempty"`
}

func (r CreateStaffRequest) ToInput() commands.StaffInput {
	return commands.StaffInput{
		Name:       r.Name,
		Specialty:  r.Specialty,
		Commission: r.Commission,
	}
}

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required,max=50"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
}

func (r CreateServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Description:     r.Description,
	}
}
