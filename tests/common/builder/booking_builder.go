//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-booking/internal/domain/booking"
	reqdto "barbershop-booking/internal/handler/dto/request"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Number        int64
	TenantID      uuid.UUID
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	StartsAt      time.Time
	Status        booking.Status
	Notes         string
}

func NewBookingBuilder() *BookingBuilder {
	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	return &BookingBuilder{
		ID:            uuid.New(),
		Number:        42,
		TenantID:      uuid.New(),
		StaffID:       uuid.New(),
		ServiceID:     uuid.New(),
		CustomerName:  "João Silva",
		CustomerPhone: "11912345678",
		CustomerEmail: "joao@example.com",
		StartsAt:      time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 0, 0, 0, time.UTC),
		Status:        booking.StatusConfirmed,
		Notes:         "degradê",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		StartsAt:  b.StartsAt,
		Customer: reqdto.CustomerRequest{
			Name:  b.CustomerName,
			Phone: b.CustomerPhone,
			Email: b.CustomerEmail,
		},
		Notes: b.Notes,
	}
}

func (b *BookingBuilder) BuildReserveInput() commands.ReserveInput {
	return commands.ReserveInput{
		TenantID:  b.TenantID,
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		Customer: commands.CustomerInput{
			Name:  b.CustomerName,
			Phone: b.CustomerPhone,
			Email: b.CustomerEmail,
		},
		StartsAt: b.StartsAt,
		Notes:    b.Notes,
	}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		BookingID: b.ID,
		Number:    b.Number,
		Code:      booking.Code(b.Number),
		TenantID:  b.TenantID,
		StaffID:   b.StaffID,
		StartsAt:  b.StartsAt,
		Status:    b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	email := b.CustomerEmail
	now := time.Now().UTC()
	return &queries.BookingView{
		ID:              b.ID,
		Number:          b.Number,
		Code:            booking.Code(b.Number),
		TenantID:        b.TenantID,
		StaffID:         b.StaffID,
		StaffName:       "Meu Barbeiro",
		ServiceID:       b.ServiceID,
		ServiceName:     "Corte Masculino",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("35.00"),
		CustomerID:      uuid.New(),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   &email,
		StartsAt:        b.StartsAt,
		Status:          b.Status.String(),
		Notes:           b.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
