package request

import (
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterTenantRequest struct {
	Name     string     `json:"name" binding:"required,max=100"`
	Email    string     `json:"email" binding:"required,email"`
	Phone    string     `json:"phone" binding:"required"`
	Password string     `json:"password" binding:"required,min=6"`
	PlanID   *uuid.UUID `json:"plan_id,omitempty"`
}

func (r RegisterTenantRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		PlanID:   r.PlanID,
	}
}

type PreferencesRequest struct {
	Reminder24h          bool `json:"reminder_24h"`
	Reminder1h           bool `json:"reminder_1h"`
	AutoConfirm          bool `json:"auto_confirm"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

type UpdatePolicyRequest struct {
	OpensAt         string              `json:"opens_at" binding:"required"`
	ClosesAt        string              `json:"closes_at" binding:"required"`
	IntervalMinutes int                 `json:"interval_minutes" binding:"required,gt=0"`
	Preferences     *PreferencesRequest `json:"preferences,omitempty"`
}

func (r UpdatePolicyRequest) ToInput() commands.PolicyInput {
	in := commands.PolicyInput{
		OpensAt:         r.OpensAt,
		ClosesAt:        r.ClosesAt,
		IntervalMinutes: r.IntervalMinutes,
	}
	if r.Preferences != nil {
		in.Preferences = &schedule.Preferences{
			Reminder24h:          r.Preferences.Reminder24h,
			Reminder1h:           r.Preferences.Reminder1h,
			AutoConfirm:          r.Preferences.AutoConfirm,
			NotificationsEnabled: r.Preferences.NotificationsEnabled,
		}
	}
	return in
}

type ActivateTenantRequest struct {
	ExtendDays int `json:"extend_days" binding:"gte=0"`
}

type ChangePlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}
