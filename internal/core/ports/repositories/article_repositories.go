package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// ArticleReader defines read operations for article data
type ArticleReader interface {
	// FindArticleByID retrieves an article inside a tenant. Returns apperrors.ErrNotFound when absent.
	FindArticleByID(ctx context.Context, tenantID, articleID string) (*domain.Article, error)

	// ListArticles retrieves a page of a tenant's articles, newest first.
	ListArticles(ctx context.Context, tenantID string, filter domain.ArticleFilter) (domain.ArticlePage, error)

	// ListExpiredArticles retrieves published articles across tenants whose expiry has passed.
	ListExpiredArticles(ctx context.Context, now time.Time, limit int) ([]domain.Article, error)
}

// ArticleWriter defines write operations for article data
type ArticleWriter interface {
	// SaveArticle persists a new article.
	SaveArticle(ctx context.Context, article domain.Article) error

	// UpdateArticle overwrites an article if its stored updatedAt still equals
	// expectedUpdatedAt. Returns apperrors.ErrConflict otherwise.
	UpdateArticle(ctx context.Context, article domain.Article, expectedUpdatedAt time.Time) error

	// DeleteArticle physically removes a draft article.
	DeleteArticle(ctx context.Context, tenantID, articleID string) error

	// IncrementViewCount adds one view to a published article.
	IncrementViewCount(ctx context.Context, tenantID, articleID string) error
}

// ArticleRepositoryFacade combines all article-related repository interfaces
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
