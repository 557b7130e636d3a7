package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopstudio/bg-removal-service/internal/pkg/auth"
)

const SessionKey = "session"

// Auth validates the caller's session before any body processing happens.
// The token comes from the session cookie, falling back to a bearer header.
func Auth(validator auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		session, err := validator.ValidateSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("session_token"); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
