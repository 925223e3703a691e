package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/client/ai"
	"github.com/eventure/chat-service/internal/client/notifier"
	"github.com/eventure/chat-service/internal/config"
	api "github.com/eventure/chat-service/internal/generated"
	"github.com/eventure/chat-service/internal/infra"
	"github.com/eventure/chat-service/internal/pkg/jwt"
	"github.com/eventure/chat-service/internal/pkg/validator"
	"github.com/eventure/chat-service/internal/realtime"
	db "github.com/eventure/chat-service/internal/repository/postgres"
	"github.com/eventure/chat-service/internal/rest"
	"github.com/eventure/chat-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	kafkaNotifier := notifier.New(cfg)
	defer kafkaNotifier.Close() //nolint:errcheck // .

	aiClient := ai.New(cfg, dbRepo)
	defer aiClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Socket.JWTSecret)

	chatService := service.New(dbRepo, kafkaNotifier)

	registry := realtime.NewRegistry()
	gateway := realtime.NewGateway(registry, chatService, aiClient, vldtr)
	socketHandler := realtime.NewHandler(gateway, jwtGenerator)

	handler := rest.New(chatService, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	api.HandlerFromMux(handler, router)

	// The socket endpoint authenticates with its own connect token, so it
	// bypasses the bearer interceptor.
	mux := http.NewServeMux()
	mux.Handle("/ws/chat", infra.LoggerHTTP(socketHandler, logger))
	mux.Handle("/", router)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: mux,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}

	gateway.Wait()
}
