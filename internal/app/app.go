// Package app wires configuration into a ready service container. Both the
// HTTP server and the admin CLI start from here.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/adapters/cache"
	"github.com/SscSPs/content_platform_app/internal/adapters/messaging"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/core/services"
	"github.com/SscSPs/content_platform_app/internal/platform/config"
	"github.com/SscSPs/content_platform_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/content_platform_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App owns the long-lived connections behind the services.
type App struct {
	Pool      *pgxpool.Pool
	Services  *portssvc.ServiceContainer
	publisher ports.EventPublisher
	redis     *redis.Client
	logger    *slog.Logger
}

// New connects to PostgreSQL, optionally Redis, and the event broker, and
// builds the service container. With migrate set pending migrations are
// applied first.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*App, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a := &App{Pool: pool, logger: logger}

	if migrate {
		if err := database.Migrate(pool, cfg.MigrationsPath, 0); err != nil {
			a.Close()
			return nil, err
		}
	}

	// Left as a nil interface when Redis is not configured
	var articleCache ports.ArticleCache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redis = client
		articleCache = cache.NewArticleCache(client)
		logger.Info("Article cache enabled", slog.String("redis_addr", cfg.RedisAddr))
	}

	a.publisher, err = messaging.NewPublisher(messaging.Config{
		Broker:      cfg.EventBroker,
		KafkaBroker: cfg.KafkaBroker,
		KafkaTopic:  cfg.KafkaTopic,
		RabbitURL:   cfg.RabbitMQURL,
		RabbitQueue: cfg.RabbitMQQueue,
	}, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}
	logger.Info("Event publisher ready", slog.String("broker", cfg.EventBroker))

	a.Services = services.NewServiceContainer(pgsql.NewRepositoryProvider(pool), a.publisher, articleCache)
	return a, nil
}

// Close releases every connection opened by New.
func (a *App) Close() error {
	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	database.ClosePgxPool(a.Pool)
	if err := errors.Join(errs...); err != nil {
		a.logger.Error("Error while closing connections", slog.String("error", err.Error()))
		return err
	}
	return nil
}
