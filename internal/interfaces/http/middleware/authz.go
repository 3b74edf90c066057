package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin restricts a route group to admin accounts. It must run after
// JWTAuthMiddleware so the role claim is in context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Administrator access required",
				},
			})
			return
		}
		c.Next()
	}
}
