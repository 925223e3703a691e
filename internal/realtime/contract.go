//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package realtime

import (
	"context"

	"github.com/eventure/chat-service/internal/model"
)

type ConversationService interface {
	ValidateParticipant(ctx context.Context, conversationID, identityID string) (*model.Participant, error)
	GetConversation(ctx context.Context, conversationID, identityID string) (*model.Conversation, error)
	SendMessage(ctx context.Context, conversationID, content, identityID string) (*model.Message, error)
	SendAiMessage(ctx context.Context, conversationID, content string) (*model.Message, error)
}

type CompletionProvider interface {
	GenerateAnswer(ctx context.Context, question, eventID string) (string, error)
}

type Validator interface {
	ValidateSendMessage(content string) error
}

type JWTValidator interface {
	ValidateConnectToken(tokenString string) (*model.SocketConnectClaims, error)
}

// RoomRegistry is the narrow surface the gateway needs from the room and
// presence bookkeeping, kept injectable so a distributed implementation can
// replace the in-memory one without touching handler logic.
type RoomRegistry interface {
	AddToRoom(roomID string, conn *Conn)
	RemoveFromRoom(roomID, connID string)
	ConnectionsInRoom(roomID string) []*Conn
	RemoveConnection(connID string)
	TrackPresence(identityID, connID string)
	ReleasePresence(identityID, connID string)
}
