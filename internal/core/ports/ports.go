package ports

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// EventPublisher delivers domain events to the configured broker.
// Publishing happens after the state change has committed; callers log
// failures instead of rolling back.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// ArticleLoader fetches an article from the source of truth on a cache miss.
type ArticleLoader func(ctx context.Context) (*domain.Article, error)

// ArticleCache is a read-through cache for single articles.
type ArticleCache interface {
	// GetOrLoad returns the cached article or calls load, caching its
	// result for ttl. Concurrent misses for the same key share one load.
	GetOrLoad(ctx context.Context, tenantID, articleID string, ttl time.Duration, load ArticleLoader) (*domain.Article, error)

	// Invalidate drops the cached copy after a mutation.
	Invalidate(ctx context.Context, tenantID, articleID string) error
}
