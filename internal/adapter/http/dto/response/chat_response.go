package response

import (
	"time"

	"freightdesk/internal/domain/entities"
)

// ChatMessageResponse is one drawer message. IsMine comes from the
// upstream serializer, so both participants see the same thread with
// their own sides flipped.
type ChatMessageResponse struct {
	ID         int64     `json:"id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	IsMine     bool      `json:"is_mine"`
}

// ChatThreadResponse is the full negotiation thread for one bid.
type ChatThreadResponse struct {
	BidID    int64                 `json:"bid_id"`
	Messages []ChatMessageResponse `json:"messages"`
}

func BuildChatThread(bidID int64, messages []entities.ChatMessage) ChatThreadResponse {
	out := ChatThreadResponse{BidID: bidID, Messages: make([]ChatMessageResponse, 0, len(messages))}
	for _, m := range messages {
		out.Messages = append(out.Messages, ChatMessageResponse{
			ID:         m.ID,
			SenderName: m.SenderName,
			SenderRole: m.SenderRole,
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
			IsMine:     m.IsMine,
		})
	}
	return out
}
