package tenant

import (
	"barbershop-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingQuotaReached = errs.New("monthly booking limit of plan reached")
	ErrStaffQuotaReached   = errs.New("staff limit of plan reached")
)

// Plan is a subscription tier. A nil booking limit means unlimited bookings.
type Plan struct {
	ID           uuid.UUID
	Name         string
	MonthlyPrice decimal.Decimal
	StaffLimit   int
	BookingLimit *int
	Features     []string
}

// AllowsAnotherBooking checks the monthly booking quota against bookings already counted this month.
func (p Plan) AllowsAnotherBooking(bookedThisMonth int) error {
	if p.BookingLimit == nil {
		return nil
	}
	if bookedThisMonth >= *p.BookingLimit {
		return errs.Wrapf(ErrBookingQuotaReached, "limit %d", *p.BookingLimit)
	}
	return nil
}

func (p Plan) AllowsAnotherStaff(activeStaff int) error {
	if activeStaff >= p.StaffLimit {
		return errs.Wrapf(ErrStaffQuotaReached, "limit %d", p.StaffLimit)
	}
	return nil
}
