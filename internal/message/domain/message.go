package domain

import "time"

// Message is a direct message between two users. It is never edited.
type Message struct {
	ID         string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	SenderID   string    `json:"senderId" gorm:"type:varchar(36);index;not null"`
	ReceiverID string    `json:"receiverId" gorm:"type:varchar(36);index;not null"`
	Text       *string   `json:"text,omitempty"`
	Image      *string   `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}
