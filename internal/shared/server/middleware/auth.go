package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notice-backend/internal/shared/server/respond"
)

// Auth validates the static bearer token shared with the mobile client.
func Auth(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Header Authorization mancante", nil)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Header Authorization non valido", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != apiToken {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Token non riconosciuto", nil)
			return
		}

		c.Next()
	}
}
