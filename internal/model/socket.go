package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// Socket protocol event names, namespaced under the chat channel.
const (
	EventJoinConversation   = "join_conversation"
	EventLeaveConversation  = "leave_conversation"
	EventSendMessage        = "send_message"
	EventTyping             = "typing"
	EventJoinedConversation = "joined_conversation"
	EventNewMessage         = "new_message"
	EventUserTyping         = "user_typing"
	EventError              = "error"
)

// SocketEnvelope frames every payload in both directions.
type SocketEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinConversationPayload struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId,omitempty"`
	TeamMemberID   string `json:"teamMemberId,omitempty"`
}

type SendMessagePayload struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
	UserID         string `json:"userId,omitempty"`
	TeamMemberID   string `json:"teamMemberId,omitempty"`
}

type TypingPayload struct {
	ConversationID string `json:"conversationId"`
	IsTyping       bool   `json:"isTyping"`
	UserID         string `json:"userId,omitempty"`
	TeamMemberID   string `json:"teamMemberId,omitempty"`
}

type JoinedConversationData struct {
	ConversationID string `json:"conversationId"`
}

type UserTypingData struct {
	IsTyping     bool   `json:"isTyping"`
	UserID       string `json:"userId,omitempty"`
	TeamMemberID string `json:"teamMemberId,omitempty"`
}

type SocketErrorData struct {
	Message string `json:"message"`
}

// SocketConnectClaims authorizes a websocket upgrade for one identity.
type SocketConnectClaims struct {
	jwt.RegisteredClaims

	Kind IdentityKind `json:"kind"`
}

// NotificationEvent is the payload published to the notifications topic when
// the conversation service emits a domain notification.
type NotificationEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
