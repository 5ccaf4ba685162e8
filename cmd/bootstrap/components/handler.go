package components

import (
	"barbershop-booking/internal/handler"
	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTenantHandler,
		api.NewAdminHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	tenant *api.TenantHandler,
	admin *api.AdminHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
) handler.Handlers {
	return handler.Handlers{
		Tenant:       tenant,
		Admin:        admin,
		Booking:      booking,
		Availability: availability,
	}
}
