//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func loggingRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.LoggingMiddleware(slog.New(slog.NewJSONHandler(buf, nil))))
	r.GET("/tenants/:tenantId/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	return r
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates a request id", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, loggingRouter(&buf), http.MethodGet, "/tenants/x/bookings", nil, "")

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `"route":"/tenants/:tenantId/bookings"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("reuses the incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequestWithHeaders(t, loggingRouter(&buf), http.MethodGet, "/tenants/x/bookings", nil,
			map[string]string{"X-Request-ID": "widget-42"})

		assert.Equal(t, "widget-42", w.Header().Get("X-Request-ID"))
		assert.Contains(t, w.Body.String(), "widget-42")
		assert.Contains(t, buf.String(), `"request_id":"widget-42"`)
	})
}
