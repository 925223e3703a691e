package model

import (
	"time"
)

// Participant binds exactly one identity (a user or a team member) to a
// conversation. Exactly one of UserID and TeamMemberID is set.
type Participant struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	UserID         *string   `db:"user_id"`
	TeamMemberID   *string   `db:"team_member_id"`
	CreatedAt      time.Time `db:"created_at"`

	// Display data resolved from the users / team_members read models.
	DisplayName *string `db:"display_name"`
	AvatarURL   *string `db:"avatar_url"`
}

type TeamMember struct {
	ID       string `db:"id" json:"id"`
	FullName string `db:"full_name" json:"full_name"`
}

type UserParams struct {
	UserID    string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}
