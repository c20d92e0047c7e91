package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionChecker reports whether the user is logged in.
type SessionChecker interface {
	IsLoggedIn() bool
}

// RequireSession rejects requests while the user is logged out.
func RequireSession(s SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsLoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in", "redirect": "/login"})
			return
		}
		c.Next()
	}
}
