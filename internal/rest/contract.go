//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/eventure/chat-service/internal/model"
)

type ConversationService interface {
	ListConversations(ctx context.Context, identityID string, offset, limit uint64) (*model.ConversationPreviewList, int64, error)
	GetMessages(ctx context.Context, conversationID, identityID string, offset, limit uint64) (*model.MessageList, int64, error)
	SendMessage(ctx context.Context, conversationID, content, identityID string) (*model.Message, error)
}

type Validator interface {
	ValidateSendMessage(content string) error
}

type JWTGenerator interface {
	GenerateConnectToken(identity model.Identity) (string, int64, error)
}
