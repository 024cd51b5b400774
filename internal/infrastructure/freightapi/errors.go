package freightapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the freight API rejected the bearer token.
	// Callers must invalidate the stored session and force a login
	// navigation, no matter which call tripped it.
	ErrUnauthorized = errors.New("freight api: unauthorized")

	// ErrForbidden means the caller is authenticated but may not see or
	// touch the resource.
	ErrForbidden = errors.New("freight api: forbidden")

	// ErrNotFound means the resource does not exist (or is hidden, which
	// the portal treats the same way).
	ErrNotFound = errors.New("freight api: not found")

	// ErrServiceUnavailable covers timeouts, connection failures and 5xx
	// responses. The backend is slow to cold-start, so screens show a
	// distinct "waking up" message instead of a generic failure and leave
	// the retry to the user.
	ErrServiceUnavailable = errors.New("freight api: service unavailable")
)

// APIError is a business-rule rejection (4xx other than auth) carrying
// the server's own message, e.g. "You can only bid once per lane.".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("freight api: %d: %s", e.StatusCode, e.Message)
}
