// Package messaging publishes domain events to Kafka, RabbitMQ or the log.
package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// envelope is the wire form shared by every broker.
type envelope struct {
	Type    domain.EventType `json:"type"`
	Payload domain.Event     `json:"payload"`
}

func encode(event domain.Event) ([]byte, error) {
	body, err := json.Marshal(envelope{Type: event.EventType(), Payload: event})
	if err != nil {
		return nil, fmt.Errorf("encoding %s event: %w", event.EventType(), err)
	}
	return body, nil
}
