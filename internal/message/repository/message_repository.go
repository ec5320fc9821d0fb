package repository

import (
	"context"
	"fmt"
	"time"

	"chat-backend/internal/message/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create assigns a UUIDv7 id. Within the process v7 ids are strictly
// increasing, so id breaks created_at ties in insertion order.
func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	msg.ID = id.String()
	msg.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(msg).Error
}

// Conversation orders by creation time, then by the time-ordered id.
func (r *messageRepository) Conversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
