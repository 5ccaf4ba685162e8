package api

import (
	"net/http"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	tenants commands.TenantCommands
	catalog commands.CatalogCommands
	q       queries.TenantQueries
}

func NewTenantHandler(tenants commands.TenantCommands, catalog commands.CatalogCommands, q queries.TenantQueries) *TenantHandler {
	return &TenantHandler{tenants: tenants, catalog: catalog, q: q}
}

// @Summary Register tenant
// @Description Create a barbershop with a trial subscription, default services, one staff member and default hours
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterTenantRequest true "Registration"
// @Success 201 {object} resdto.RegisterTenantResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tenants [post]
func (h *TenantHandler) Register(c *gin.Context) {
	var req reqdto.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	result, err := h.tenants.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary List plans
// @Tags plans
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *TenantHandler) ListPlans(c *gin.Context) {
	plans, err := h.q.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": resdto.FromPlanViews(plans)})
}

// @Summary Get tenant
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId} [get]
func (h *TenantHandler) Get(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	view, err := h.q.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}

// @Summary Public catalog
// @Description Active staff, active services and operating hours of a tenant
// @Tags tenants
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Success 200 {object} resdto.CatalogResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/catalog [get]
func (h *TenantHandler) Catalog(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	view, err := h.q.ListCatalog(c.Request.Context(), tenantID)
	h.writeCatalog(c, view, err)
}

// @Summary Public catalog by shop slug
// @Description Same as the tenant catalog, resolved from the shop's public domain slug
// @Tags tenants
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} resdto.CatalogResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shops/{slug} [get]
func (h *TenantHandler) CatalogBySlug(c *gin.Context) {
	view, err := h.q.CatalogBySlug(c.Request.Context(), c.Param("slug"))
	h.writeCatalog(c, view, err)
}

func (h *TenantHandler) writeCatalog(c *gin.Context, view *queries.CatalogView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromCatalogView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.CreateStaffRequest true "Staff member"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /tenants/{tenantId}/staff [post]
func (h *TenantHandler) CreateStaff(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	id, err := h.catalog.CreateStaff(c.Request.Context(), tenantID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Deactivate staff member
// @Tags staff
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param staffId path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/staff/{staffId} [delete]
func (h *TenantHandler) DeactivateStaff(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	staffID, ok := pathUUID(c, "staffId")
	if !ok {
		return
	}
	if err := h.catalog.DeactivateStaff(c.Request.Context(), tenantID, staffID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /tenants/{tenantId}/services [post]
func (h *TenantHandler) CreateService(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	id, err := h.catalog.CreateService(c.Request.Context(), tenantID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update operating hours
// @Tags tenants
// @Accept json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.UpdatePolicyRequest true "Policy"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /tenants/{tenantId}/policy [put]
func (h *TenantHandler) UpdatePolicy(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	if err := h.tenants.UpdatePolicy(c.Request.Context(), tenantID, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
