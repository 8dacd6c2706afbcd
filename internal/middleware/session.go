package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "session_id"

// Session cookie lifetime in seconds (7 days, matches the cart TTL).
const sessionMaxAge = 7 * 24 * 60 * 60

// SessionMiddleware makes sure every request on cart/checkout routes
// carries a session id. The cart store is keyed by this id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set("sessionID", sid)
		c.Next()
	}
}
