package middleware

import (
	"log/slog"
	"net/http"

	"barbershop-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes the last public error when a handler recorded one
// without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, internalErrorMessage, nil))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{
					"error", err,
					"method", c.Request.Method,
					"path", c.FullPath(),
				}
				if id := GetRequestID(c); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				if p, ok := GetPrincipal(c); ok {
					attrs = append(attrs, "tenant_id", p.TenantID().String(), "role", p.Role().String())
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, internalErrorMessage, nil))
			}
		}()
		c.Next()
	}
}
