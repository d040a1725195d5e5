package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher sends events to a durable queue through the default exchange.
type RabbitPublisher struct {
	conn  *amqp.Connection
	chn   Channel
	queue string
}

var _ ports.EventPublisher = (*RabbitPublisher)(nil)

// NewRabbitPublisher dials url, opens a channel and declares queue.
func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}
	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}
	if _, err := chn.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		chn.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring queue %s: %w", queue, err)
	}
	return &RabbitPublisher{conn: conn, chn: chn, queue: queue}, nil
}

// NewRabbitPublisherWithChannel allows injecting a test channel.
func NewRabbitPublisherWithChannel(chn Channel, queue string) *RabbitPublisher {
	return &RabbitPublisher{chn: chn, queue: queue}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}
	err = p.chn.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.EventType()),
		MessageId:    event.PartitionKey(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", event.EventType(), err)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	err := p.chn.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
