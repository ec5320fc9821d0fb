package usecase

//go:generate mockgen -source=usecase.go -destination=../../mocks/mock_message_usecase.go -package=mocks

import (
	"context"

	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/message/domain"
	"chat-backend/internal/message/dto"
)

// MessageUsecase defines the user directory and direct messaging operations.
type MessageUsecase interface {
	// ListUsers returns every user except the caller, optionally filtered
	// and ranked by a fuzzy search.
	ListUsers(ctx context.Context, currentUserID, search string) ([]authdomain.PublicUser, error)

	// Conversation returns the messages exchanged with otherUserID, oldest first.
	Conversation(ctx context.Context, currentUserID, otherUserID string) ([]*domain.Message, error)

	// Send stores a message from sender. Either text or an image is required.
	Send(ctx context.Context, sender *authdomain.User, req *dto.SendMessageRequest) (*domain.Message, error)
}

// Notifier is told about every stored message. Implementations must not
// block the caller.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, msg *domain.Message, sender *authdomain.User)
}
