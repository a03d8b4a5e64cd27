package middleware

import (
	"net/http"

	"penjualan_admin/internal/model"

	"github.com/gin-gonic/gin"
)

// ForbiddenTemplate is rendered for browsers that are logged in without the required role
const ForbiddenTemplate = "forbidden.tmpl"

// RoleMiddleware creates a middleware to check for specific admin roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			forbid(c, "Role not found in session, ensure session middleware runs first")
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			forbid(c, "Invalid role type in session")
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}
		forbid(c, "You do not have permission to access this resource")
	}
}

// AdminMiddleware checks if the session belongs to an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

func forbid(c *gin.Context, msg string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
		return
	}
	c.HTML(http.StatusForbidden, ForbiddenTemplate, gin.H{"Title": "Akses Ditolak", "Message": msg})
	c.Abort()
}
