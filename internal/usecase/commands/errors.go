package commands

import (
	"barbershop-booking/internal/domain/booking"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"
)

var (
	ErrValidation              = errs.ErrDomainValidation
	ErrTenantInactive          = shared.ErrTenantInactive
	ErrQuotaExceeded           = errs.New("plan quota exceeded")
	ErrSlotConflict            = errs.New("slot already booked")
	ErrAlreadyCancelled        = booking.ErrAlreadyCancelled
	ErrInvalidTransition       = booking.ErrInvalidTransition
	ErrTenantAlreadyExists     = errs.New("tenant with this email already exists")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Not-found family, re-exported so callers only import commands.
var (
	ErrTenantNotFound  = shared.ErrTenantNotFound
	ErrPlanNotFound    = shared.ErrPlanNotFound
	ErrStaffNotFound   = shared.ErrStaffNotFound
	ErrServiceNotFound = shared.ErrServiceNotFound
	ErrBookingNotFound = shared.ErrBookingNotFound
)

// classify maps anything that is not already a known sentinel onto
// ErrDatabaseOperationFailed so transports never leak raw driver errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	known := []error{
		ErrValidation, ErrTenantInactive, ErrQuotaExceeded, ErrSlotConflict,
		ErrAlreadyCancelled, ErrTenantAlreadyExists, errs.ErrNotFound,
	}
	for _, k := range known {
		if errs.Is(err, k) {
			return err
		}
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
