//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=handler.go
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, userInfo *model.UserParams) error
}

// Handler keeps the local user read model in sync with the user service.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

func (h *Handler) Handler(ctx context.Context, msg []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var payload model.UserUpdatedPayload
	if err := json.Unmarshal(msg, &payload); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if payload.UserID == "" {
		logger.Error("user update without user id, skipping")
		return
	}

	err := h.repository.UpsertUser(ctx, &model.UserParams{
		UserID:    payload.UserID,
		Nickname:  payload.Nickname,
		AvatarURL: payload.AvatarURL,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", payload.UserID, err))
		return
	}

	logger.Info(fmt.Sprintf("user %s synced", payload.UserID))
}
