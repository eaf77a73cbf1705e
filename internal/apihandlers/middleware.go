package apihandlers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// TriggerAuth guards the internal trigger endpoints with a shared
// secret header. An empty configured secret disables the check, which
// is only acceptable behind a private network.
func TriggerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("X-Trigger-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			Unauthorized(c, "invalid or missing trigger secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
