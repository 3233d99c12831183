package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "msm_sid"
	sessionKey    = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// Session makes sure every visitor carries a UUID session cookie. Per-visitor state
// (latest estimate, in-flight submission) is keyed by it.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", secure, true)
		}
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// SessionID returns the visitor id set by Session, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
