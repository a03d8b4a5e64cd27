package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCookie writes an HttpOnly, SameSite=Lax cookie on the root path.
// A negative maxAge deletes it.
func SetCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
