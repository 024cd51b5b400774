package entities

import "time"

// Role mirrors the role claim issued by the freight API on login.
type Role string

const (
	RoleOrg    Role = "ORG"
	RoleVendor Role = "VENDOR"
	RoleAdmin  Role = "ADMIN"
)

// Session is the one durable piece of client state the portal owns: the
// bearer token handed out by the freight API plus the identity attached
// to it. The browser only ever holds the opaque session ID cookie.
//
// Storage model (DynamoDB):
//   - PK: id (string, random UUID)
//
// Everything else the portal shows is a transient, re-fetchable copy of
// upstream state and is never persisted.
type Session struct {
	ID          string    `json:"id"`
	Token       string    `json:"-"`
	Role        Role      `json:"role"`
	Username    string    `json:"username"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session's token lifetime has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// IsOrg reports whether the session may create RFQs, lanes, counters and awards.
func (s Session) IsOrg() bool {
	return s.Role == RoleOrg || s.Role == RoleAdmin
}

// IsVendor reports whether the session may submit bids and answer counters.
func (s Session) IsVendor() bool {
	return s.Role == RoleVendor
}
