package handlers

import (
	"net/http"
	"time"

	"freightdesk/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the opaque portal session id. The
	// upstream access token never leaves the server.
	SessionCookieName = "fd_session"

	// LoginPath is where expired or missing sessions get redirected.
	LoginPath = "/login"

	sessionContextKey = "portal_session"
)

// SetSession attaches the resolved session to the request context.
// Called by the route guard after cookie validation.
func SetSession(c *gin.Context, s entities.Session) {
	c.Set(sessionContextKey, s)
}

// SessionFromContext returns the session placed by the route guard.
func SessionFromContext(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

func setSessionCookie(c *gin.Context, s entities.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, s.ID, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
