package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/eventure/chat-service/internal/client/notifier"
	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/databus/event"
	"github.com/eventure/chat-service/internal/repository/postgres"
	"github.com/eventure/chat-service/internal/service"
)

const (
	eventCreatedConsumerGroupID = "chat-event-provisioner"
	eventJoinedConsumerGroupID  = "chat-event-enroller"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	kafkaNotifier := notifier.New(cfg)
	defer kafkaNotifier.Close() //nolint:errcheck // .

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	chatService := service.New(dbRepo, kafkaNotifier)
	eventHandler := event.New(chatService)

	createdConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.EventCreatedTopic,
		eventCreatedConsumerGroupID,
	)
	createdConsumer, err := kafkalib.NewConsumer(createdConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create event.created consumer: %v", err))
	}
	createdConsumer.RegisterHandler(ctx, func(ctx context.Context, msg []byte) error {
		eventHandler.HandleEventCreated(ctx, msg)
		return nil
	})

	joinedConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.EventJoinedTopic,
		eventJoinedConsumerGroupID,
	)
	joinedConsumer, err := kafkalib.NewConsumer(joinedConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create event.joined consumer: %v", err))
	}
	joinedConsumer.RegisterHandler(ctx, func(ctx context.Context, msg []byte) error {
		eventHandler.HandleEventJoined(ctx, msg)
		return nil
	})

	<-ctx.Done()
	logger.Info("event lifecycle worker stopped")
}
