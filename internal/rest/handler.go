package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	api "github.com/eventure/chat-service/internal/generated"
	"github.com/eventure/chat-service/internal/model"
	"github.com/eventure/chat-service/internal/service"
)

const (
	defaultConversationsLimit = 10
	defaultMessagesLimit      = 50
)

type Handler struct {
	service      ConversationService
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(svc ConversationService, validator Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		service:      svc,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request, params api.ListConversationsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListConversations")

	identityID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	offset, limit := paginationFromParams(params.Page, params.Limit, defaultConversationsLimit)

	previews, total, err := h.service.ListConversations(r.Context(), identityID, offset, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations: %v", err))
		h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	conversations := make([]api.ConversationPreview, len(*previews))
	for i, preview := range *previews {
		var lastMessageTimestamp *string
		if preview.LastMessageTimestamp != nil {
			timestamp := preview.LastMessageTimestamp.Format(time.RFC3339)
			lastMessageTimestamp = &timestamp
		}

		conversations[i] = api.ConversationPreview{
			ConversationId:       preview.ConversationID,
			EventId:              preview.EventID,
			EventTitle:           preview.EventTitle,
			OrganizerName:        preview.OrganizerName,
			LastMessageContent:   preview.LastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
		}
	}

	h.writeJSON(w, api.ListConversationsResponse{
		Conversations: conversations,
		Total:         total,
	}, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string, params api.GetConversationMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	identityID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	offset, limit := paginationFromParams(params.Page, params.Limit, defaultMessagesLimit)

	messages, total, err := h.service.GetMessages(r.Context(), conversationId, identityID, offset, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		if errors.Is(err, service.ErrNotFound) {
			h.writeError(w, "participant not found", http.StatusNotFound)
			return
		}
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = toAPIMessage(&msg)
	}

	h.writeJSON(w, api.GetConversationMessagesResponse{
		Messages: apiMessages,
		Total:    total,
	}, http.StatusOK)
}

func (h *Handler) SendConversationMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendConversationMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identityID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender id")
		h.writeError(w, "failed to get sender id", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(req.Content); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), conversationId, req.Content, identityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		if errors.Is(err, service.ErrNotFound) {
			h.writeError(w, "participant not found", http.StatusNotFound)
			return
		}
		h.writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{Message: toAPIMessage(message)}, http.StatusOK)
}

func (h *Handler) GetSocketToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSocketToken")

	identityID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	kind, ok := r.Context().Value(config.KeyRole).(model.IdentityKind)
	if !ok {
		kind = model.IdentityUser
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(model.Identity{Kind: kind, ID: identityID})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate socket token: %v", err))
		h.writeError(w, "failed to generate socket token", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("issued socket token for %s", identityID))

	h.writeJSON(w, api.GetSocketTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toAPIMessage(msg *model.Message) api.Message {
	var senderID *string
	if msg.SenderID != nil {
		id := msg.SenderID.String()
		senderID = &id
	}

	return api.Message{
		Id:             msg.ID.String(),
		ConversationId: msg.ConversationID.String(),
		SenderId:       senderID,
		SenderName:     msg.SenderName,
		SenderAvatar:   msg.SenderAvatar,
		Content:        msg.Content,
		IsAi:           msg.IsAi,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339),
	}
}

func paginationFromParams(page, limit *int, defaultLimit uint64) (uint64, uint64) {
	resolvedLimit := defaultLimit
	if limit != nil && *limit > 0 {
		resolvedLimit = uint64(*limit)
	}

	var offset uint64
	if page != nil && *page > 1 {
		offset = (uint64(*page) - 1) * resolvedLimit
	}

	return offset, resolvedLimit
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
