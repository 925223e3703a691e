//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=handler.go
package event

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

type ConversationService interface {
	HandleEventCreated(ctx context.Context, payload *model.EventCreatedPayload) error
	HandleEventJoined(ctx context.Context, payload *model.EventJoinedPayload) error
}

// Handler wires the event lifecycle topics into the conversation service.
// Both handlers are replay-safe, so at-least-once delivery is fine.
type Handler struct {
	service ConversationService
}

func New(svc ConversationService) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) HandleEventCreated(ctx context.Context, msg []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("EventCreatedHandler")

	var payload model.EventCreatedPayload
	if err := json.Unmarshal(msg, &payload); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal event.created: %v", err))
		return
	}

	if payload.Event.ID == "" {
		logger.Error("event.created without event id, skipping")
		return
	}

	if err := h.service.HandleEventCreated(ctx, &payload); err != nil {
		logger.Error(fmt.Sprintf("failed to provision conversation for event %s: %v", payload.Event.ID, err))
	}
}

func (h *Handler) HandleEventJoined(ctx context.Context, msg []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("EventJoinedHandler")

	var payload model.EventJoinedPayload
	if err := json.Unmarshal(msg, &payload); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal event.joined: %v", err))
		return
	}

	if payload.EventID == "" || payload.UserID == "" {
		logger.Error("event.joined without event or user id, skipping")
		return
	}

	if err := h.service.HandleEventJoined(ctx, &payload); err != nil {
		logger.Error(fmt.Sprintf("failed to enroll user %s into event %s conversation: %v", payload.UserID, payload.EventID, err))
	}
}
