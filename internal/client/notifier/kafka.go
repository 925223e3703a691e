package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/segmentio/kafka-go"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

// Kafka publishes domain notifications to the chat notifications topic.
type Kafka struct {
	writer *kafka.Writer
}

func New(cfg *config.Config) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(net.JoinHostPort(cfg.Kafka.Host, cfg.Kafka.Port)),
			Topic:        cfg.Kafka.NotificationsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

// Notify publishes one notification. The event name keys the message so
// consumers see per-event ordering.
func (k *Kafka) Notify(ctx context.Context, event string, data interface{}) error {
	payload, err := json.Marshal(model.NotificationEvent{
		Event: event,
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
