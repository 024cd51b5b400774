package routes

import (
	"errors"
	"net/http"
	"net/url"

	"freightdesk/internal/adapter/http/handlers"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

// RequireSession resolves the portal cookie into a session and aborts
// with a login redirect when there is none. The originally requested
// path rides along in the redirect so the client can come back to it.
func RequireSession(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(handlers.SessionCookieName)
		if err != nil || sessionID == "" {
			abortToLogin(c)
			return
		}

		session, err := sessions.Current(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, usecase.ErrNoSession) {
				abortToLogin(c)
				return
			}
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		handlers.SetSession(c, session)
		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users off the public auth
// endpoints: a valid session short-circuits straight to the dashboard.
func RedirectIfAuthenticated(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(handlers.SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}
		if _, err := sessions.Current(c.Request.Context(), sessionID); err != nil {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
	}
}

func abortToLogin(c *gin.Context) {
	target := handlers.LoginPath
	if path := c.Request.URL.Path; path != "" && path != "/" {
		target += "?next=" + url.QueryEscape(path)
	}
	appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sign in to continue", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithRedirect(target))
}
