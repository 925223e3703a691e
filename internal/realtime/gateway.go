package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
	"github.com/eventure/chat-service/internal/service"
)

// Gateway owns the realtime protocol: room membership, presence bookkeeping
// and message fan-out. All persistence goes through the conversation service;
// AI answers go through the completion provider.
type Gateway struct {
	registry  RoomRegistry
	service   ConversationService
	provider  CompletionProvider
	validator Validator

	// outstanding assistant-reply tasks, waited on in tests and on shutdown
	aiTasks sync.WaitGroup
}

func NewGateway(registry RoomRegistry, svc ConversationService, provider CompletionProvider, validator Validator) *Gateway {
	return &Gateway{
		registry:  registry,
		service:   svc,
		provider:  provider,
		validator: validator,
	}
}

// HandleEnvelope dispatches one inbound protocol message. Failures are
// contained to the sending connection; they never affect room state or other
// connections.
func (g *Gateway) HandleEnvelope(ctx context.Context, conn *Conn, envelope model.SocketEnvelope) {
	switch envelope.Event {
	case model.EventJoinConversation:
		var payload model.JoinConversationPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			g.emitError(conn, "invalid payload")
			return
		}
		g.JoinConversation(ctx, conn, payload)
	case model.EventLeaveConversation:
		var payload model.JoinConversationPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			g.emitError(conn, "invalid payload")
			return
		}
		g.LeaveConversation(ctx, conn, payload)
	case model.EventSendMessage:
		var payload model.SendMessagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			g.emitError(conn, "invalid payload")
			return
		}
		g.SendMessage(ctx, conn, payload)
	case model.EventTyping:
		var payload model.TypingPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			g.emitError(conn, "invalid payload")
			return
		}
		g.Typing(ctx, conn, payload)
	default:
		g.emitError(conn, fmt.Sprintf("unknown event: %s", envelope.Event))
	}
}

// JoinConversation validates participation, then subscribes the connection to
// the conversation room. Re-joining an already held room only re-confirms.
func (g *Gateway) JoinConversation(ctx context.Context, conn *Conn, payload model.JoinConversationPayload) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("JoinConversation")

	identity, ok := model.IdentityFromIDs(payload.UserID, payload.TeamMemberID)
	if !ok {
		g.emitError(conn, "no user ID or team member ID provided")
		return
	}

	if _, err := g.service.ValidateParticipant(ctx, payload.ConversationID, identity.ID); err != nil {
		logger.Error(fmt.Sprintf("join conversation failed: %v", err))
		if errors.Is(err, service.ErrNotFound) {
			g.emitError(conn, "participant not found")
		} else {
			g.emitError(conn, "failed to join conversation")
		}
		return
	}

	g.registry.AddToRoom(payload.ConversationID, conn)
	g.registry.TrackPresence(identity.ID, conn.ID)

	g.emit(conn, model.EventJoinedConversation, model.JoinedConversationData{
		ConversationID: payload.ConversationID,
	})

	logger.Info(fmt.Sprintf("connection %s joined conversation %s", conn.ID, payload.ConversationID))
}

// LeaveConversation drops the room membership. No validation: leaving an
// unjoined room is a harmless no-op.
func (g *Gateway) LeaveConversation(ctx context.Context, conn *Conn, payload model.JoinConversationPayload) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("LeaveConversation")

	g.registry.RemoveFromRoom(payload.ConversationID, conn.ID)

	if identity, ok := model.IdentityFromIDs(payload.UserID, payload.TeamMemberID); ok {
		g.registry.ReleasePresence(identity.ID, conn.ID)
	}

	logger.Info(fmt.Sprintf("connection %s left conversation %s", conn.ID, payload.ConversationID))
}

// SendMessage persists the message through the conversation service and fans
// it out to every connection in the room, the sender included. When the
// sender is an end user, an assistant reply is generated asynchronously after
// the human broadcast; assistant failures are swallowed.
func (g *Gateway) SendMessage(ctx context.Context, conn *Conn, payload model.SendMessagePayload) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SendMessage")

	identity, ok := model.IdentityFromIDs(payload.UserID, payload.TeamMemberID)
	if !ok {
		g.emitError(conn, "no user ID or team member ID provided")
		return
	}

	if err := g.validator.ValidateSendMessage(payload.Content); err != nil {
		g.emitError(conn, err.Error())
		return
	}

	message, err := g.service.SendMessage(ctx, payload.ConversationID, payload.Content, identity.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("send message failed: %v", err))
		if errors.Is(err, service.ErrNotFound) {
			g.emitError(conn, "participant not found")
		} else {
			g.emitError(conn, "failed to send message")
		}
		return
	}

	g.broadcast(payload.ConversationID, model.EventNewMessage, message)

	if identity.IsUser() {
		g.aiTasks.Add(1)
		go g.replyWithAssistant(context.WithoutCancel(ctx), payload.ConversationID, payload.Content, identity.ID)
	}
}

// Typing re-broadcasts the typing flag to the room, sender included. No
// persistence, no validation.
func (g *Gateway) Typing(_ context.Context, _ *Conn, payload model.TypingPayload) {
	g.broadcast(payload.ConversationID, model.EventUserTyping, model.UserTypingData{
		IsTyping:     payload.IsTyping,
		UserID:       payload.UserID,
		TeamMemberID: payload.TeamMemberID,
	})
}

// Disconnect removes the connection from every room it was a member of.
func (g *Gateway) Disconnect(ctx context.Context, conn *Conn) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	g.registry.RemoveConnection(conn.ID)

	logger.Info(fmt.Sprintf("connection disconnected: %s", conn.ID))
}

// Wait blocks until all outstanding assistant-reply tasks finish.
func (g *Gateway) Wait() {
	g.aiTasks.Wait()
}

// replyWithAssistant runs detached from the triggering handler so a slow
// model never delays or blocks human traffic. The ctx keeps the request's
// values but not its cancellation: a reply still lands in the room when the
// asking connection is already gone.
func (g *Gateway) replyWithAssistant(ctx context.Context, conversationID, question, userID string) {
	defer g.aiTasks.Done()

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	conversation, err := g.service.GetConversation(ctx, conversationID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve conversation for assistant reply: %v", err))
		return
	}

	answer, err := g.provider.GenerateAnswer(ctx, question, conversation.EventID)
	if err != nil {
		logger.Error(fmt.Sprintf("assistant reply generation failed: %v", err))
		return
	}

	if answer == "" {
		return
	}

	message, err := g.service.SendAiMessage(ctx, conversationID, answer)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to persist assistant reply: %v", err))
		return
	}

	g.broadcast(conversationID, model.EventNewMessage, message)
}

func (g *Gateway) broadcast(roomID, event string, data interface{}) {
	payload, err := envelopeBytes(event, data)
	if err != nil {
		return
	}

	for _, conn := range g.registry.ConnectionsInRoom(roomID) {
		_ = conn.Send(payload)
	}
}

func (g *Gateway) emit(conn *Conn, event string, data interface{}) {
	payload, err := envelopeBytes(event, data)
	if err != nil {
		return
	}

	_ = conn.Send(payload)
}

func (g *Gateway) emitError(conn *Conn, message string) {
	g.emit(conn, model.EventError, model.SocketErrorData{Message: message})
}

func envelopeBytes(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(model.SocketEnvelope{
		Event: event,
		Data:  raw,
	})
}
