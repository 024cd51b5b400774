package response

import "freightdesk/internal/domain/entities"

// SessionResponse is the identity echo consumed by every screen's header.
type SessionResponse struct {
	Role        entities.Role `json:"role"`
	Username    string        `json:"username"`
	CompanyName string        `json:"company_name,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		Role:        s.Role,
		Username:    s.Username,
		CompanyName: s.CompanyName,
	}
}
