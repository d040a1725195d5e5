package repositories

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// AnalyticsRepositoryFacade aggregates article data for dashboards.
type AnalyticsRepositoryFacade interface {
	CountArticlesByStatus(ctx context.Context, tenantID string) (domain.StatusCounts, error)
	CountArticlesByType(ctx context.Context, tenantID string) ([]domain.TypeCount, error)
	ListTopArticles(ctx context.Context, tenantID string, limit int) ([]domain.TopArticle, error)
	SumViews(ctx context.Context, tenantID string) (int64, error)
	CountPendingSchedules(ctx context.Context, tenantID string) (int64, error)
}
