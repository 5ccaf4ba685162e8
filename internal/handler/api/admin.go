package api

import (
	"net/http"
	"strconv"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.TenantCommands
	q    queries.TenantQueries
}

func NewAdminHandler(cmds commands.TenantCommands, q queries.TenantQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary List tenants
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Success 200 {object} resdto.TenantPageResponse
// @Router /admin/tenants [get]
func (h *AdminHandler) ListTenants(c *gin.Context) {
	page := 1
	if v := c.Query("page"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 {
			page = iv
		}
	}
	result, err := h.q.ListTenants(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTenantPage(result))
}

// @Summary Activate tenant
// @Description Reactivate a tenant and optionally extend the subscription
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.ActivateTenantRequest false "Extension"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/tenants/{tenantId}/activate [post]
func (h *AdminHandler) Activate(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.ActivateTenantRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err, "Invalid request")
			return
		}
	}
	if err := h.cmds.Activate(c.Request.Context(), tenantID, req.ExtendDays); err != nil {
		respondError(c, err)
		return
	}
	h.respondTenant(c)
}

// @Summary Deactivate tenant
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/tenants/{tenantId}/deactivate [post]
func (h *AdminHandler) Deactivate(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), tenantID); err != nil {
		respondError(c, err)
		return
	}
	h.respondTenant(c)
}

// @Summary Change tenant plan
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.ChangePlanRequest true "Plan"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/tenants/{tenantId}/plan [put]
func (h *AdminHandler) ChangePlan(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.ChangePlan(c.Request.Context(), tenantID, req.PlanID); err != nil {
		respondError(c, err)
		return
	}
	h.respondTenant(c)
}

func (h *AdminHandler) respondTenant(c *gin.Context) {
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
