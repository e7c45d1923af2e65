package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID tags every request with a UUID for log correlation. An inbound
// X-Request-ID is kept so callers can trace across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// FromContext returns the id set by RequestID, or "" when the middleware
// did not run.
func FromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
