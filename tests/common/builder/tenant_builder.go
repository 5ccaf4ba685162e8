//go:build unit || e2e

package builder

import (
	"time"

	reqdto "barbershop-booking/internal/handler/dto/request"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanBuilder struct {
	ID           uuid.UUID
	Name         string
	MonthlyPrice decimal.Decimal
	StaffLimit   int
	BookingLimit *int
	Features     []string
}

func NewPlanBuilder() *PlanBuilder {
	limit := 100
	return &PlanBuilder{
		ID:           uuid.New(),
		Name:         "Start",
		MonthlyPrice: decimal.RequireFromString("150.00"),
		StaffLimit:   2,
		BookingLimit: &limit,
		Features:     []string{"agendamento_24_7"},
	}
}

func (p *PlanBuilder) With(mutate func(*PlanBuilder)) *PlanBuilder {
	mutate(p)
	return p
}

func (p *PlanBuilder) Unlimited() *PlanBuilder {
	p.BookingLimit = nil
	return p
}

func (p *PlanBuilder) BuildSnapshot() shared.PlanSnapshot {
	return shared.PlanSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		StaffLimit:   p.StaffLimit,
		BookingLimit: p.BookingLimit,
		Features:     p.Features,
	}
}

func (p *PlanBuilder) BuildView() queries.PlanView {
	return queries.PlanView{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		StaffLimit:   p.StaffLimit,
		BookingLimit: p.BookingLimit,
		Features:     p.Features,
	}
}

type TenantBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Slug      string
	Password  string
	Active    bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	Plan      *PlanBuilder
}

func NewTenantBuilder() *TenantBuilder {
	now := time.Now().UTC()
	expires := now.Add(7 * 24 * time.Hour)
	return &TenantBuilder{
		ID:        uuid.New(),
		Name:      "Barbearia do Zé",
		Email:     "ze@barbearia.com",
		Phone:     "11987654321",
		Slug:      "barbearia-do-ze",
		Password:  "segredo123",
		Active:    true,
		ExpiresAt: &expires,
		CreatedAt: now,
		Plan:      NewPlanBuilder(),
	}
}

func (t *TenantBuilder) With(mutate func(*TenantBuilder)) *TenantBuilder {
	mutate(t)
	return t
}

func (t *TenantBuilder) BuildSnapshot() shared.TenantSnapshot {
	return shared.TenantSnapshot{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		Slug:      t.Slug,
		Active:    t.Active,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		Plan:      t.Plan.BuildSnapshot(),
	}
}

func (t *TenantBuilder) BuildView() *queries.TenantView {
	return &queries.TenantView{
		ID:                 t.ID,
		Name:               t.Name,
		Email:              t.Email,
		Phone:              t.Phone,
		Slug:               t.Slug,
		PlanID:             t.Plan.ID,
		PlanName:           t.Plan.Name,
		Active:             t.Active,
		ExpiresAt:          t.ExpiresAt,
		TrialDaysRemaining: 7,
		CreatedAt:          t.CreatedAt,
	}
}

func (t *TenantBuilder) BuildRegisterRequestDTO() reqdto.RegisterTenantRequest {
	return reqdto.RegisterTenantRequest{
		Name:     t.Name,
		Email:    t.Email,
		Phone:    t.Phone,
		Password: t.Password,
	}
}
