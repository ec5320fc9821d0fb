package dto

import (
	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/message/domain"
)

// SendMessageRequest carries the form fields of send-message. ImagePath is a
// staged upload on local disk, empty when no image was sent.
type SendMessageRequest struct {
	ReceiverID string
	Text       string
	ImagePath  string
}

type UsersResponse struct {
	Success bool                    `json:"success"`
	Users   []authdomain.PublicUser `json:"users"`
}

type MessagesResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []*domain.Message `json:"data"`
}

type MessageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *domain.Message `json:"data"`
}
