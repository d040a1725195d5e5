package messaging

import (
	"context"
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	"github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each event as one message keyed by article id, so a
// single article's events land on one partition in order.
type KafkaPublisher struct {
	writer Writer
}

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:     []byte(event.PartitionKey()),
		Value:   body,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(event.EventType())}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write %s: %w", event.EventType(), err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
