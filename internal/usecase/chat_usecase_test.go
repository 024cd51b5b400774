package usecase

import (
	"context"
	"errors"
	"testing"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	mock_interfaces "freightdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_History(t *testing.T) {
	t.Run("invalid bid id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil)
		_, err := uc.History(context.Background(), vendorSession(), 0)
		if !errors.Is(err, ErrInvalidBidID) {
			t.Fatalf("expected ErrInvalidBidID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightGateway(ctrl)
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewChatUseCase(gateway, sessions)

		expected := []entities.ChatMessage{{ID: 1, Message: "Can you do 2800?", IsMine: true}}
		gateway.EXPECT().ListBidMessages(gomock.Any(), "tok-vnd", int64(101)).Return(expected, nil)

		messages, err := uc.History(context.Background(), vendorSession(), 101)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 1 || messages[0].Message != "Can you do 2800?" {
			t.Fatalf("unexpected messages: %+v", messages)
		}
	})

	t.Run("401 invalidates the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightGateway(ctrl)
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewChatUseCase(gateway, sessions)

		gateway.EXPECT().ListBidMessages(gomock.Any(), "tok-vnd", int64(101)).Return(nil, freightapi.ErrUnauthorized)
		sessions.EXPECT().Delete(gomock.Any(), "sess-vnd").Return(nil)

		_, err := uc.History(context.Background(), vendorSession(), 101)
		if !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})
}

func TestChatUseCase_Post(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil)
		_, err := uc.Post(context.Background(), vendorSession(), 101, "   ")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("post then refreshed history, no local echo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIFreightGateway(ctrl)
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewChatUseCase(gateway, sessions)

		refreshed := []entities.ChatMessage{
			{ID: 1, Message: "Can you do 2800?"},
			{ID: 2, Message: "Yes, confirmed.", IsMine: true},
		}
		gomock.InOrder(
			gateway.EXPECT().PostBidMessage(gomock.Any(), "tok-vnd", int64(101), "Yes, confirmed.").Return(nil),
			gateway.EXPECT().ListBidMessages(gomock.Any(), "tok-vnd", int64(101)).Return(refreshed, nil),
		)

		messages, err := uc.Post(context.Background(), vendorSession(), 101, " Yes, confirmed. ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 2 || messages[1].ID != 2 {
			t.Fatalf("expected the server's copy of the thread, got %+v", messages)
		}
	})
}
