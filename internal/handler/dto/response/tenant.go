package response

import (
	"time"

	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice string   `json:"monthly_price"`
	StaffLimit   int      `json:"staff_limit"`
	BookingLimit *int     `json:"booking_limit"`
	Features     []string `json:"features"`
}

func FromPlanViews(items []queries.PlanView) []*PlanResponse {
	res := make([]*PlanResponse, len(items))
	for i, p := range items {
		res[i] = &PlanResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice.StringFixed(2),
			StaffLimit:   p.StaffLimit,
			BookingLimit: p.BookingLimit,
			Features:     p.Features,
		}
	}
	return res
}

type TenantResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Slug               string     `json:"slug"`
	PlanID             string     `json:"plan_id"`
	PlanName           string     `json:"plan_name"`
	Active             bool       `json:"active"`
	ExpiresAt          *time.Time `json:"expires_at"`
	TrialDaysRemaining int        `json:"trial_days_remaining"`
	CreatedAt          int64      `json:"created_at"`
}

func FromTenantView(v *queries.TenantView) *TenantResponse {
	return &TenantResponse{
		ID:                 v.ID.String(),
		Name:               v.Name,
		Email:              v.Email,
		Phone:              v.Phone,
		Slug:               v.Slug,
		PlanID:             v.PlanID.String(),
		PlanName:           v.PlanName,
		Active:             v.Active,
		ExpiresAt:          v.ExpiresAt,
		TrialDaysRemaining: v.TrialDaysRemaining,
		CreatedAt:          v.CreatedAt.Unix(),
	}
}

type TenantPageResponse struct {
	Tenants  []*TenantResponse `json:"tenants"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func FromTenantPage(p *queries.TenantPage) *TenantPageResponse {
	items := make([]*TenantResponse, len(p.Items))
	for i := range p.Items {
		items[i] = FromTenantView(&p.Items[i])
	}
	return &TenantPageResponse{Tenants: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}

type RegisterTenantResponse struct {
	TenantID  string    `json:"tenant_id"`
	Slug      string    `json:"slug"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
}

func FromRegisterResult(r *commands.RegisterResult) *RegisterTenantResponse {
	return &RegisterTenantResponse{
		TenantID:  r.TenantID.String(),
		Slug:      r.Slug,
		ExpiresAt: r.ExpiresAt,
		Token:     r.Token,
	}
}

// StaffResponse is served on unauthenticated routes and carries no pay data.
type StaffResponse struct {
	ID        string `json:"id" copier:"-"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
}

type ServiceResponse struct {
	ID              string `json:"id" copier:"-"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price" copier:"-"`
	Description     string `json:"description,omitempty"`
}

type PolicyResponse struct {
	OpensAt              string `json:"opens_at"`
	ClosesAt             string `json:"closes_at"`
	IntervalMinutes      int    `json:"interval_minutes"`
	Configured           bool   `json:"configured"`
	Reminder24h          bool   `json:"reminder_24h"`
	Reminder1h           bool   `json:"reminder_1h"`
	AutoConfirm          bool   `json:"auto_confirm"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

type CatalogResponse struct {
	TenantID   string             `json:"tenant_id"`
	TenantName string             `json:"tenant_name"`
	Slug       string             `json:"slug"`
	Staff      []*StaffResponse   `json:"staff"`
	Services   []*ServiceResponse `json:"services"`
	Policy     PolicyResponse     `json:"policy"`
}

// FromCatalogView copies same-named fields with copier; ids and money are formatted by hand.
func FromCatalogView(v *queries.CatalogView) (*CatalogResponse, error) {
	res := &CatalogResponse{
		TenantID:   v.TenantID.String(),
		TenantName: v.TenantName,
		Slug:       v.Slug,
		Staff:      make([]*StaffResponse, len(v.Staff)),
		Services:   make([]*ServiceResponse, len(v.Services)),
	}
	if err := copier.Copy(&res.Policy, &v.Policy); err != nil {
		return nil, err
	}
	for i, st := range v.Staff {
		out := &StaffResponse{}
		if err := copier.Copy(out, &st); err != nil {
			return nil, err
		}
		out.ID = st.ID.String()
		res.Staff[i] = out
	}
	for i, svc := range v.Services {
		out := &ServiceResponse{}
		if err := copier.Copy(out, &svc); err != nil {
			return nil, err
		}
		out.ID = svc.ID.String()
		out.Price = svc.Price.StringFixed(2)
		res.Services[i] = out
	}
	return res, nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}
