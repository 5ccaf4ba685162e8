package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/infra/metrics"
	"barbershop-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Tenant       *api.TenantHandler
	Admin        *api.AdminHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, reg *metrics.Registry, logger *slog.Logger) {
	setupMiddleware(engine, cfg, reg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, reg)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, reg *metrics.Registry, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(reg))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, reg *metrics.Registry) {
	engine.GET("/health", healthCheck)
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(reg.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/plans", Handler: h.Tenant.ListPlans},
			{Method: http.MethodPost, Path: "/tenants", Handler: h.Tenant.Register},
			{Method: http.MethodGet, Path: "/shops/:slug", Handler: h.Tenant.CatalogBySlug},
		})

		tenant := apiGroup.Group("/tenants/:tenantId")
		{
			// customer-facing, no token
			addRoutes(tenant, []route{
				{Method: http.MethodGet, Path: "/catalog", Handler: h.Tenant.Catalog},
				{Method: http.MethodGet, Path: "/staff/:staffId/slots", Handler: h.Availability.Slots},
				{Method: http.MethodGet, Path: "/staff/:staffId/next-slot", Handler: h.Availability.NextSlot},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			})

			owner := tenant.Group("")
			owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireTenantAccess())
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tenant.Get},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Booking.Complete},
				{Method: http.MethodPost, Path: "/staff", Handler: h.Tenant.CreateStaff},
				{Method: http.MethodDelete, Path: "/staff/:staffId", Handler: h.Tenant.DeactivateStaff},
				{Method: http.MethodPost, Path: "/services", Handler: h.Tenant.CreateService},
				{Method: http.MethodPut, Path: "/policy", Handler: h.Tenant.UpdatePolicy},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/tenants", Handler: h.Admin.ListTenants},
				{Method: http.MethodPost, Path: "/tenants/:tenantId/activate", Handler: h.Admin.Activate},
				{Method: http.MethodPost, Path: "/tenants/:tenantId/deactivate", Handler: h.Admin.Deactivate},
				{Method: http.MethodPut, Path: "/tenants/:tenantId/plan", Handler: h.Admin.ChangePlan},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
