package api

import (
	"net/http"
	"time"

	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available slots
// @Description Free slot instants for one staff member on one day. policyConfigured is false when default hours were used.
// @Tags availability
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param staffId path string true "Staff ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/staff/{staffId}/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	staffID, ok := pathUUID(c, "staffId")
	if !ok {
		return
	}
	raw := c.Query("date")
	if raw == "" {
		badRequest(c, errs.New("date is required"), "Missing date")
		return
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}
	view, err := h.q.Slots(c.Request.Context(), tenantID, staffID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}

// @Summary Next available slot
// @Description First free slot at or after from (RFC3339, default now) within the configured horizon
// @Tags availability
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param staffId path string true "Staff ID"
// @Param from query string false "Start instant (RFC3339)"
// @Success 200 {object} resdto.NextSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/staff/{staffId}/next-slot [get]
func (h *AvailabilityHandler) NextSlot(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	staffID, ok := pathUUID(c, "staffId")
	if !ok {
		return
	}
	var from time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, err, "Invalid from")
			return
		}
		from = t.UTC()
	}
	view, err := h.q.NextSlot(c.Request.Context(), tenantID, staffID, from)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNextSlotView(view))
}
