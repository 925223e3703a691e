package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Socket   Socket
	AI       AI
}

type Service struct {
	Port string `env:"CHAT_SERVICE_PORT"`
	Name string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host               string `env:"KAFKA_HOST"`
	Port               string `env:"KAFKA_PORT"`
	EventCreatedTopic  string `env:"EVENT_CREATED_TOPIC" env-default:"event.created"`
	EventJoinedTopic   string `env:"EVENT_JOINED_TOPIC" env-default:"event.joined"`
	UserTopic          string `env:"USER_UPDATED_TOPIC" env-default:"user.updated"`
	NotificationsTopic string `env:"CHAT_NOTIFICATIONS_TOPIC" env-default:"chat.notifications"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Socket struct {
	JWTSecret string `env:"SOCKET_JWT_SECRET"`
}

type AI struct {
	BaseURL string        `env:"AI_BASE_URL"`
	APIKey  string        `env:"AI_API_KEY"`
	Model   string        `env:"AI_MODEL" env-default:"openai/gpt-4o-mini"`
	Timeout time.Duration `env:"AI_TIMEOUT" env-default:"30s"`
}

func MustLoad() *Config {
	cfg := Config{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return &cfg
}
