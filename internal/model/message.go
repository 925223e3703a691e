package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ConversationID uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	SenderID       *uuid.UUID `db:"sender_id" json:"sender_id"`
	Content        string     `db:"content" json:"content"`
	IsAi           bool       `db:"is_ai" json:"is_ai"`
	SenderName     *string    `db:"sender_name" json:"sender_name,omitempty"`
	SenderAvatar   *string    `db:"sender_avatar" json:"sender_avatar,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
