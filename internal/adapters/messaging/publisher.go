package messaging

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/core/ports"
)

const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerLog      = "log"
)

// Config selects and addresses the event broker.
type Config struct {
	Broker      string
	KafkaBroker string
	KafkaTopic  string
	RabbitURL   string
	RabbitQueue string
}

// NewPublisher builds the publisher named by cfg.Broker. An empty broker
// falls back to the log publisher.
func NewPublisher(cfg Config, logger *slog.Logger) (ports.EventPublisher, error) {
	switch cfg.Broker {
	case BrokerKafka:
		if cfg.KafkaBroker == "" || cfg.KafkaTopic == "" {
			return nil, fmt.Errorf("kafka broker and topic are required")
		}
		return NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic), nil
	case BrokerRabbitMQ:
		if cfg.RabbitURL == "" || cfg.RabbitQueue == "" {
			return nil, fmt.Errorf("rabbitmq url and queue are required")
		}
		return NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	case BrokerLog, "":
		return NewLogPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown event broker %q", cfg.Broker)
	}
}
