package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalcare/internal/models"
)

// RequireAdmin rejects any identity whose role does not pass the admin
// predicate. Must run after Session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok || !models.IsAdmin(id.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
