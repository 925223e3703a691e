package model

import (
	"time"
)

type Conversation struct {
	ID        string    `db:"id"`
	EventID   string    `db:"event_id"`
	CreatedAt time.Time `db:"created_at"`
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	ConversationID       string     `db:"conversation_id"`
	EventID              string     `db:"event_id"`
	EventTitle           string     `db:"event_title"`
	OrganizerName        string     `db:"organizer_name"`
	LastMessageContent   *string    `db:"last_message_content"`
	LastMessageTimestamp *time.Time `db:"last_message_timestamp"`
}
