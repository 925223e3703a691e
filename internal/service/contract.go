//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/eventure/chat-service/internal/model"
)

type DBRepo interface {
	CreateConversation(ctx context.Context, eventID string) (string, error)
	GetConversationByEvent(ctx context.Context, eventID string) (*model.Conversation, error)
	GetConversationForIdentity(ctx context.Context, conversationID, identityID string) (*model.Conversation, error)
	FindParticipant(ctx context.Context, conversationID, identityID string) (*model.Participant, error)
	AddTeamMemberParticipants(ctx context.Context, conversationID string, members []model.TeamMember) error
	AddUserParticipant(ctx context.Context, conversationID, userID string) (string, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessages(ctx context.Context, conversationID string, offset, limit uint64) (*model.MessageList, int64, error)
	GetConversationPreviews(ctx context.Context, identityID string, offset, limit uint64) (*model.ConversationPreviewList, int64, error)
	UpsertEvent(ctx context.Context, event *model.Event) error
	UpsertTeamMembers(ctx context.Context, members []model.TeamMember) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Notifier interface {
	Notify(ctx context.Context, event string, data interface{}) error
}
