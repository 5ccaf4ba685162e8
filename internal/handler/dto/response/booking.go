package response

import (
	"time"

	"barbershop-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	TenantID        string    `json:"tenant_id"`
	StaffID         string    `json:"staff_id"`
	StaffName       string    `json:"staff_name"`
	ServiceID       string    `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           string    `json:"price"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   *string   `json:"customer_email,omitempty"`
	StartsAt        time.Time `json:"starts_at"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       int64     `json:"created_at"`
	UpdatedAt       int64     `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		Code:            v.Code,
		TenantID:        v.TenantID.String(),
		StaffID:         v.StaffID.String(),
		StaffName:       v.StaffName,
		ServiceID:       v.ServiceID.String(),
		ServiceName:     v.ServiceName,
		DurationMinutes: v.DurationMinutes,
		Price:           v.Price.StringFixed(2),
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CustomerEmail:   v.CustomerEmail,
		StartsAt:        v.StartsAt,
		Status:          v.Status,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}

func FromBookingList(items []queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i := range items {
		res[i] = FromBookingView(&items[i])
	}
	return res
}
