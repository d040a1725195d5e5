// Package cache provides the Redis-backed read-through cache for articles.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const articleKeyPrefix = "article:"

// errMiss is returned by a store when the key is absent.
var errMiss = errors.New("cache miss")

// store is the key/value surface the article cache needs.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisStore struct {
	client redis.Cmdable
}

func (s redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errMiss
	}
	return val, err
}

func (s redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s redisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// ArticleCache caches single articles as JSON. Redis errors never fail a
// read; the loader is called instead.
type ArticleCache struct {
	store store
	group singleflight.Group

	mu      sync.Mutex
	loading map[string]*pendingLoad
}

// pendingLoad is marked stale when the key is invalidated mid-load, so the
// pre-mutation row it read is not written back.
type pendingLoad struct {
	stale bool
}

// loadTimeout bounds a shared load, which no longer follows any single
// caller's context.
const loadTimeout = 10 * time.Second

var _ ports.ArticleCache = (*ArticleCache)(nil)

func NewArticleCache(client redis.Cmdable) *ArticleCache {
	return &ArticleCache{store: redisStore{client: client}}
}

func articleKey(tenantID, articleID string) string {
	return articleKeyPrefix + tenantID + ":" + articleID
}

func (c *ArticleCache) GetOrLoad(ctx context.Context, tenantID, articleID string, ttl time.Duration, load ports.ArticleLoader) (*domain.Article, error) {
	key := articleKey(tenantID, articleID)
	if a, ok := c.get(ctx, key); ok {
		return a, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		pending := c.beginLoad(key)
		a, err := load(loadCtx)
		stale := c.endLoad(key, pending)
		if err != nil {
			return nil, err
		}
		if !stale {
			c.set(loadCtx, key, a, ttl)
		}
		return a, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		a := *res.Val.(*domain.Article)
		return &a, nil
	}
}

func (c *ArticleCache) Invalidate(ctx context.Context, tenantID, articleID string) error {
	key := articleKey(tenantID, articleID)
	c.mu.Lock()
	if pending := c.loading[key]; pending != nil {
		pending.stale = true
	}
	c.mu.Unlock()

	c.group.Forget(key)
	if err := c.store.Del(ctx, key); err != nil {
		return fmt.Errorf("invalidating %s: %w", key, err)
	}
	return nil
}

func (c *ArticleCache) beginLoad(key string) *pendingLoad {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading == nil {
		c.loading = map[string]*pendingLoad{}
	}
	pending := &pendingLoad{}
	c.loading[key] = pending
	return pending
}

// endLoad reports whether the key was invalidated while pending was running.
func (c *ArticleCache) endLoad(key string, pending *pendingLoad) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading[key] == pending {
		delete(c.loading, key)
	}
	return pending.stale
}

func (c *ArticleCache) get(ctx context.Context, key string) (*domain.Article, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, errMiss) {
			slog.WarnContext(ctx, "article cache get error", "key", key, "error", err)
		}
		return nil, false
	}
	var a domain.Article
	if err := json.Unmarshal(raw, &a); err != nil {
		slog.WarnContext(ctx, "article cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	return &a, true
}

func (c *ArticleCache) set(ctx context.Context, key string, a *domain.Article, ttl time.Duration) {
	raw, err := json.Marshal(a)
	if err != nil {
		slog.WarnContext(ctx, "article cache encode error", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		slog.WarnContext(ctx, "article cache set error", "key", key, "error", err)
	}
}
