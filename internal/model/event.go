package model

import (
	"time"
)

// Event is the local read model of a platform event, kept so AI prompts can
// be built without a round-trip to the event service.
type Event struct {
	ID            string     `db:"id" json:"id"`
	OrganizerID   string     `db:"organizer_id" json:"organizer_id"`
	OrganizerName string     `db:"organizer_name" json:"organizer_name"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	Venue         string     `db:"venue" json:"venue"`
	StartsAt      *time.Time `db:"starts_at" json:"starts_at,omitempty"`
	EndsAt        *time.Time `db:"ends_at" json:"ends_at,omitempty"`
}

// EventCreatedPayload is the databus message announcing a new event.
// The team roster rides along so staff can be enrolled without a
// callback to the organizer service.
type EventCreatedPayload struct {
	Event       Event        `json:"event"`
	TeamMembers []TeamMember `json:"team_members"`
}

// EventJoinedPayload is the databus message announcing a paid/confirmed join.
type EventJoinedPayload struct {
	UserEventID string `json:"user_event_id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
}

type UserUpdatedPayload struct {
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
