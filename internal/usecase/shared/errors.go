package shared

import (
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"
)

// Not-found sentinels shared by the command and query sides. Each is reported
// together with errs.ErrNotFound so transports can map the whole family at once.
var (
	ErrTenantNotFound  = errs.New("tenant not found")
	ErrPlanNotFound    = errs.New("plan not found")
	ErrStaffNotFound   = errs.New("staff member not found")
	ErrServiceNotFound = errs.New("service not found")
	ErrBookingNotFound = errs.New("booking not found")
)

// ErrTenantInactive covers inactive and expired tenants on every customer-facing path.
var ErrTenantInactive = errs.New("tenant does not accept bookings")

// MarkNotFound tags err with sentinel and errs.ErrNotFound.
func MarkNotFound(err, sentinel error) error {
	return errs.Mark(errs.Mark(err, sentinel), errs.ErrNotFound)
}

// NotFoundOr marks repository NOT_FOUND errors with sentinel and returns anything else unchanged.
func NotFoundOr(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return MarkNotFound(err, sentinel)
	}
	return err
}
