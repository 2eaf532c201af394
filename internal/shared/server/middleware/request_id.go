package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notice-backend/internal/shared/server/respond"
)

const (
	requestIDKey    = "requestId"
	requestIDHeader = "Request-Id"
)

// RequestID attaches the caller's correlation id to context and response
// header, generating one for routes that do not require it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequireRequestID rejects requests without a caller-supplied Request-Id.
func RequireRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(requestIDHeader)) == "" {
			respond.Error(c, http.StatusBadRequest, "missing_request_id", "Request-Id mancante", nil)
			return
		}
		c.Next()
	}
}

// RequestIDFromContext fetches the request ID stored by RequestID middleware.
func RequestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(requestIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
