package usecase

import (
	"context"
	"errors"
	"strings"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"
)

var ErrEmptyMessage = errors.New("message cannot be empty")

// IChatUseCase backs the negotiation drawer: history on open, and
// post-then-immediate-refresh on send. The recurring refresh loop lives
// in the handler layer, scoped to the stream request's lifetime.
type IChatUseCase interface {
	History(ctx context.Context, s entities.Session, bidID int64) ([]entities.ChatMessage, error)
	Post(ctx context.Context, s entities.Session, bidID int64, message string) ([]entities.ChatMessage, error)
}

type ChatUseCase struct {
	gateway  interfaces.IFreightGateway
	sessions interfaces.ISessionRepository
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(gateway interfaces.IFreightGateway, sessions interfaces.ISessionRepository) *ChatUseCase {
	return &ChatUseCase{gateway: gateway, sessions: sessions}
}

func (u *ChatUseCase) History(ctx context.Context, s entities.Session, bidID int64) ([]entities.ChatMessage, error) {
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}
	messages, err := u.gateway.ListBidMessages(ctx, s.Token, bidID)
	if err != nil {
		return nil, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return messages, nil
}

// Post sends one message and returns the refreshed history, so the
// drawer shows the server's copy rather than a local echo.
func (u *ChatUseCase) Post(ctx context.Context, s entities.Session, bidID int64, message string) ([]entities.ChatMessage, error) {
	if bidID <= 0 {
		return nil, ErrInvalidBidID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if err := u.gateway.PostBidMessage(ctx, s.Token, bidID, message); err != nil {
		return nil, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return u.History(ctx, s, bidID)
}
