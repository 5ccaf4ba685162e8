package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type PlanView struct {
	ID           uuid.UUID
	Name         string
	MonthlyPrice decimal.Decimal
	StaffLimit   int
	BookingLimit *int
	Features     []string
}

type TenantView struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Phone              string
	Slug               string
	PlanID             uuid.UUID
	PlanName           string
	Active             bool
	ExpiresAt          *time.Time
	TrialDaysRemaining int
	CreatedAt          time.Time
}

type TenantPage struct {
	Items    []TenantView
	Total    int
	Page     int
	PageSize int
}

type StaffView struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Name       string
	Specialty  string
	Active     bool
	Commission decimal.Decimal
}

type ServiceView struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	Description     string
}

type PolicyView struct {
	OpensAt              string
	ClosesAt             string
	IntervalMinutes      int
	Configured           bool
	Reminder24h          bool
	Reminder1h           bool
	AutoConfirm          bool
	NotificationsEnabled bool
}

type CatalogView struct {
	TenantID   uuid.UUID
	TenantName string
	Slug       string
	Staff      []StaffView
	Services   []ServiceView
	Policy     PolicyView
}

type SlotsView struct {
	TenantID         uuid.UUID
	StaffID          uuid.UUID
	Date             time.Time
	Slots            []time.Time
	PolicyConfigured bool
	OpensAt          string
	ClosesAt         string
	IntervalMinutes  int
}

type NextSlotView struct {
	StaffID          uuid.UUID
	Slot             *time.Time
	PolicyConfigured bool
	HorizonDays      int
}

type BookingView struct {
	ID              uuid.UUID
	Number          int64
	Code            string
	TenantID        uuid.UUID
	StaffID         uuid.UUID
	StaffName       string
	ServiceID       uuid.UUID
	ServiceName     string
	DurationMinutes int
	Price           decimal.Decimal
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	StartsAt        time.Time
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingFilter struct {
	// Day restricts results to one calendar day (UTC) when non-zero.
	Day    time.Time
	Status string
}
