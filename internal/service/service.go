package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

// Domain notification names emitted for external listeners.
const (
	NotificationMessageCreated   = "message.created"
	NotificationParticipantAdded = "participant.added"
)

// ErrNotFound marks participation and lookup failures so transports can map
// them without inspecting error text.
var ErrNotFound = errors.New("not found")

// Service orchestrates participation validation and message persistence.
// It has no socket awareness; realtime delivery belongs to the gateway.
type Service struct {
	repository DBRepo
	notifier   Notifier
}

func New(repo DBRepo, notifier Notifier) *Service {
	return &Service{
		repository: repo,
		notifier:   notifier,
	}
}

// ValidateParticipant resolves the participant record binding the identity to
// the conversation. The identity id is matched against both the user and the
// team member columns.
func (s *Service) ValidateParticipant(ctx context.Context, conversationID, identityID string) (*model.Participant, error) {
	participant, err := s.repository.FindParticipant(ctx, conversationID, identityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("participant %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find participant: %v", err)
	}

	return participant, nil
}

func (s *Service) GetConversation(ctx context.Context, conversationID, identityID string) (*model.Conversation, error) {
	conversation, err := s.repository.GetConversationForIdentity(ctx, conversationID, identityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("conversation %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return conversation, nil
}

func (s *Service) ListConversations(ctx context.Context, identityID string, offset, limit uint64) (*model.ConversationPreviewList, int64, error) {
	return s.repository.GetConversationPreviews(ctx, identityID, offset, limit)
}

// GetMessages validates participation first, then returns the requested page
// oldest-first together with the total count.
func (s *Service) GetMessages(ctx context.Context, conversationID, identityID string, offset, limit uint64) (*model.MessageList, int64, error) {
	if _, err := s.ValidateParticipant(ctx, conversationID, identityID); err != nil {
		return nil, 0, err
	}

	return s.repository.GetMessages(ctx, conversationID, offset, limit)
}

func (s *Service) SendMessage(ctx context.Context, conversationID, content, identityID string) (*model.Message, error) {
	var message model.Message

	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		participant, err := s.ValidateParticipant(ctx, conversationID, identityID)
		if err != nil {
			return err
		}

		senderID := uuid.MustParse(participant.ID)
		message = model.Message{
			ID:             uuid.New(),
			ConversationID: uuid.MustParse(conversationID),
			SenderID:       &senderID,
			Content:        content,
			SenderName:     participant.DisplayName,
			SenderAvatar:   participant.AvatarURL,
			CreatedAt:      time.Now(),
		}

		return s.repository.SaveMessage(ctx, &message)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, NotificationMessageCreated, message)

	return &message, nil
}

// SendAiMessage persists an assistant-authored message. It has no sender
// participant and carries the is_ai flag.
func (s *Service) SendAiMessage(ctx context.Context, conversationID, content string) (*model.Message, error) {
	message := model.Message{
		ID:             uuid.New(),
		ConversationID: uuid.MustParse(conversationID),
		Content:        content,
		IsAi:           true,
		CreatedAt:      time.Now(),
	}

	if err := s.repository.SaveMessage(ctx, &message); err != nil {
		return nil, err
	}

	s.notify(ctx, NotificationMessageCreated, message)

	return &message, nil
}

// HandleEventCreated provisions the event's conversation and enrolls the
// current team roster. Safe to replay: every insert is idempotent.
func (s *Service) HandleEventCreated(ctx context.Context, payload *model.EventCreatedPayload) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("HandleEventCreated")

	return s.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repository.UpsertEvent(ctx, &payload.Event); err != nil {
			return fmt.Errorf("failed to upsert event: %v", err)
		}

		if err := s.repository.UpsertTeamMembers(ctx, payload.TeamMembers); err != nil {
			return fmt.Errorf("failed to upsert team members: %v", err)
		}

		conversationID, err := s.repository.CreateConversation(ctx, payload.Event.ID)
		if errors.Is(err, sql.ErrNoRows) {
			conversation, err := s.repository.GetConversationByEvent(ctx, payload.Event.ID)
			if err != nil {
				return fmt.Errorf("failed to get existing conversation: %v", err)
			}
			conversationID = conversation.ID
		} else if err != nil {
			return fmt.Errorf("failed to create conversation: %v", err)
		}

		if err := s.repository.AddTeamMemberParticipants(ctx, conversationID, payload.TeamMembers); err != nil {
			return fmt.Errorf("failed to add team member participants: %v", err)
		}

		logger.Info(fmt.Sprintf("conversation %s ready for event %s, %d team members enrolled",
			conversationID, payload.Event.ID, len(payload.TeamMembers)))

		return nil
	})
}

// HandleEventJoined enrolls a user into the event's conversation. A missing
// conversation is logged and skipped; a duplicate join is treated as success.
func (s *Service) HandleEventJoined(ctx context.Context, payload *model.EventJoinedPayload) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("HandleEventJoined")

	conversation, err := s.repository.GetConversationByEvent(ctx, payload.EventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Error(fmt.Sprintf("conversation not found for event: %s", payload.EventID))
			return nil
		}
		return fmt.Errorf("failed to get conversation: %v", err)
	}

	participantID, err := s.repository.AddUserParticipant(ctx, conversation.ID, payload.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info(fmt.Sprintf("user %s already participates in conversation %s", payload.UserID, conversation.ID))
			return nil
		}
		return fmt.Errorf("failed to add participant: %v", err)
	}

	logger.Info(fmt.Sprintf("participant created: %s", participantID))

	s.notify(ctx, NotificationParticipantAdded, map[string]string{
		"participant_id":  participantID,
		"conversation_id": conversation.ID,
	})

	return nil
}

// notify publishes a domain notification. Delivery is best effort: a broker
// failure must not fail the persisted operation.
func (s *Service) notify(ctx context.Context, event string, data interface{}) {
	if err := s.notifier.Notify(ctx, event, data); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to publish %s notification: %v", event, err))
	}
}
