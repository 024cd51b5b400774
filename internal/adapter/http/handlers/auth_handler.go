package handlers

import (
	"errors"
	"net/http"

	request "freightdesk/internal/adapter/http/dto/request"
	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Username and password are required", http.StatusBadRequest)

// AuthHandler owns the session lifecycle: sign in, sign out and the
// identity echo the client calls on boot.
type AuthHandler struct {
	usecase usecase.ISessionUseCase
}

func NewAuthHandler(uc usecase.ISessionUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

type loginResponse struct {
	Session  response.SessionResponse `json:"session"`
	Redirect string                   `json:"redirect"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapLoginError(err)
		respondError(c, appErr)
		return
	}

	setSessionCookie(c, session)
	c.JSON(http.StatusOK, loginResponse{
		Session:  response.FromSession(session),
		Redirect: payload.ResolveNext(),
	})
}

// Logout is idempotent: a missing or stale cookie still clears state and
// sends the client to the login screen.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(SessionCookieName); err == nil && sessionID != "" {
		if err := h.usecase.Logout(c.Request.Context(), sessionID); err != nil {
			appErr := mapUpstreamError(err)
			respondError(c, appErr)
			return
		}
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"redirect": LoginPath})
}

// Session echoes the authenticated identity for the current cookie.
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple(codeSessionExpired, "Not signed in", http.StatusUnauthorized)
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapLoginError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return errInvalidLoginPayload
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return mapUpstreamError(err)
	}
}
