package request

import "strings"

// LoginRequest is the credential payload from the login screen.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`

	// Next is the originally requested path, carried through the login
	// round-trip so a deep link survives the redirect.
	Next string `json:"next"`
}

// ResolveNext returns a safe post-login target: only same-site absolute
// paths are honored, anything else lands on the default screen.
func (r LoginRequest) ResolveNext() string {
	next := strings.TrimSpace(r.Next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	return next
}
