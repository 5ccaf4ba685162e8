package response

import (
	"time"

	"barbershop-booking/internal/usecase/queries"
)

type SlotsResponse struct {
	TenantID         string      `json:"tenant_id"`
	StaffID          string      `json:"staff_id"`
	Date             string      `json:"date"`
	Slots            []time.Time `json:"slots"`
	PolicyConfigured bool        `json:"policyConfigured"`
	OpensAt          string      `json:"opens_at"`
	ClosesAt         string      `json:"closes_at"`
	IntervalMinutes  int         `json:"interval_minutes"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	slots := v.Slots
	if slots == nil {
		slots = []time.Time{}
	}
	return &SlotsResponse{
		TenantID:         v.TenantID.String(),
		StaffID:          v.StaffID.String(),
		Date:             v.Date.Format(time.DateOnly),
		Slots:            slots,
		PolicyConfigured: v.PolicyConfigured,
		OpensAt:          v.OpensAt,
		ClosesAt:         v.ClosesAt,
		IntervalMinutes:  v.IntervalMinutes,
	}
}

type NextSlotResponse struct {
	StaffID          string     `json:"staff_id"`
	Slot             *time.Time `json:"slot"`
	Found            bool       `json:"found"`
	PolicyConfigured bool       `json:"policyConfigured"`
	HorizonDays      int        `json:"horizon_days"`
}

func FromNextSlotView(v *queries.NextSlotView) *NextSlotResponse {
	return &NextSlotResponse{
		StaffID:          v.StaffID.String(),
		Slot:             v.Slot,
		Found:            v.Slot != nil,
		PolicyConfigured: v.PolicyConfigured,
		HorizonDays:      v.HorizonDays,
	}
}
