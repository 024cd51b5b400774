package entities

import "time"

// ChatMessage is one negotiation message tied to a bid. Append-only from
// the portal's point of view; IsMine is computed by the freight API for
// the requesting user.
type ChatMessage struct {
	ID         int64     `json:"id"`
	BidID      int64     `json:"bid"`
	SenderID   int64     `json:"sender"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `json:"is_read"`
	IsMine     bool      `json:"is_mine"`
}
