package api

import (
	"context"
	"net/http"
	"time"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Reserve slot
// @Description Book a staff member at one slot instant. Concurrent requests for the same slot get exactly one success.
// @Tags bookings
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /tenants/{tenantId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(tenantID))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithView(c, http.StatusCreated, result)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings ordered by start with optional day/status filters and keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param status query string false "confirmed, cancelled or completed"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /tenants/{tenantId}/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	var filter queries.BookingFilter
	if v := c.Query("date"); v != "" {
		day, err := time.Parse(time.DateOnly, v)
		if err != nil {
			badRequest(c, err, "Invalid date")
			return
		}
		filter.Day = day
	}
	filter.Status = c.Query("status")

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListBookings(c.Request.Context(), tenantID, filter, cursor, queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"bookings": resdto.FromBookingList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; the slot becomes reservable immediately
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tenants/{tenantId}/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tenants/{tenantId}/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.Complete)
}

func (h *BookingHandler) transition(c *gin.Context, run func(ctx context.Context, tenantID, bookingID uuid.UUID) (*commands.BookingResult, error)) {
	tenantID, ok := pathUUID(c, "tenantId")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := run(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, result)
}

func (h *BookingHandler) respondWithView(c *gin.Context, status int, result *commands.BookingResult) {
	view, err := h.q.GetBooking(c.Request.Context(), result.TenantID, result.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}
