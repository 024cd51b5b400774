package handlers

import (
	"errors"
	"net/http"

	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

const (
	codeSessionExpired      = "SESSION_EXPIRED"
	codeServiceWakingUp     = "SERVICE_WAKING_UP"
	codeNotFoundOrForbidden = "NOT_FOUND_OR_FORBIDDEN"
)

// mapUpstreamError translates gateway and session failures into the
// portal's error envelope. Handler-specific validation errors are mapped
// before falling through to this.
func mapUpstreamError(err error) *pkg.AppError {
	var apiErr *freightapi.APIError
	switch {
	case errors.Is(err, usecase.ErrSessionExpired), errors.Is(err, freightapi.ErrUnauthorized):
		return pkg.NewDomainErrorSimple(codeSessionExpired, "Your session has expired. Please sign in again.", http.StatusUnauthorized)
	case errors.Is(err, freightapi.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple(codeServiceWakingUp, "The freight service is waking up. Please try again in a moment.", http.StatusServiceUnavailable)
	case errors.Is(err, freightapi.ErrForbidden), errors.Is(err, freightapi.ErrNotFound):
		return pkg.NewDomainErrorSimple(codeNotFoundOrForbidden, "Not found, or you do not have access to it.", http.StatusNotFound)
	case errors.As(err, &apiErr):
		// Business rejections carry the server's own message verbatim
		// (duplicate bid on a lane, closed tender, and so on).
		return pkg.NewDomainErrorSimple("UPSTREAM_REJECTED", apiErr.Message, apiErr.StatusCode)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the envelope; expired sessions additionally clear
// the cookie and tell the client where to navigate.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Code == codeSessionExpired {
		clearSessionCookie(c)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithRedirect(LoginPath))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
