package repository

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_message_repository.go -package=mocks

import (
	"context"

	"chat-backend/internal/message/domain"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// Conversation returns every message between a and b in either
	// direction, oldest first.
	Conversation(ctx context.Context, a, b string) ([]*domain.Message, error)
}
