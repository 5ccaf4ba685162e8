//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError_RecordsPublicMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var recorded *gin.Error
	r.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors.Last()
	})
	r.GET("/bookings", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("duplicate key"), "Slot already booked", gin.H{"slot": "14:00"})
	})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/bookings", nil, "")
	resp := httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot already booked")
	assert.Equal(t, map[string]any{"slot": "14:00"}, resp.Detail)

	require.NotNil(t, recorded)
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	meta, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok, "meta: %#v", recorded.Meta)
	assert.Equal(t, http.StatusConflict, meta.Status)
	assert.Equal(t, "Slot already booked", meta.Error.Message)
	assert.EqualError(t, recorded.Err, "duplicate key")
}

func TestAbortWithError_NilErrPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)
	assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request", nil) })
}
