package request

import "strings"

// ChatMessageRequest is one outgoing drawer message.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (r ChatMessageRequest) ResolveMessage() string {
	return strings.TrimSpace(r.Message)
}
