package api

import (
	"log/slog"
	"net/http"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: a missing tenant on reserve is both not-found and inactive.
var errorMappings = []errorMapping{
	{commands.ErrTenantInactive, http.StatusForbidden, "Tenant does not accept bookings"},
	{commands.ErrQuotaExceeded, http.StatusTooManyRequests, "Plan quota exceeded"},
	{commands.ErrSlotConflict, http.StatusConflict, "Slot already booked"},
	{commands.ErrAlreadyCancelled, http.StatusConflict, "Booking already cancelled"},
	{commands.ErrTenantAlreadyExists, http.StatusConflict, "Tenant already exists"},
	{commands.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
}

// respondError maps usecase errors to statuses. Domain messages are safe to
// expose; anything unmapped becomes a generic 500.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, gin.H{"reason": err.Error()})
			return
		}
	}
	slog.Error("unhandled usecase error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
