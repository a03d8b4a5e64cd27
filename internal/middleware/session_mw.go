package middleware

import (
	"net/http"
	"strings"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthAdminKey = "authAdmin"
	AuthRoleKey  = "authRole"

	// SessionCookieName holds the admin session token
	SessionCookieName = "penjualan_session"

	msgLoginRequired = "Silakan login terlebih dahulu"
)

// SessionAuthMiddleware requires a valid admin session.
// The token is read from the session cookie, or from a Bearer header for API clients.
// Browsers without a session are redirected to the login page with a flash.
func SessionAuthMiddleware(jwtUtil *utils.JWTUtil, flashes *utils.FlashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			rejectSession(c, flashes, "Session required")
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("rejected session for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			rejectSession(c, flashes, "Invalid or expired session")
			return
		}

		c.Set(AuthAdminKey, claims.Email)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

func rejectSession(c *gin.Context, flashes *utils.FlashStore, apiMessage string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiMessage})
		return
	}
	flashes.Push(c, utils.ErrorFlash(msgLoginRequired))
	flashes.Persist(c)
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

// WantsJSON reports whether the client prefers JSON over HTML
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
