package messaging

import (
	"context"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
)

// LogPublisher writes events to the structured log. Used when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.logger.InfoContext(ctx, "domain event",
		slog.String("event_type", string(event.EventType())),
		slog.String("key", event.PartitionKey()),
		slog.Any("payload", event))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
