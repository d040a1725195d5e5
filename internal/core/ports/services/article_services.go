package services

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/dto"
)

// ArticleReaderSvc defines read operations for article data
type ArticleReaderSvc interface {
	// GetArticle retrieves an article the actor is allowed to view.
	GetArticle(ctx context.Context, tenantID, articleID, actorID string) (*domain.Article, error)

	// ListArticles retrieves a page of the tenant's articles. Articles the
	// actor may not view are left out of the page.
	ListArticles(ctx context.Context, tenantID string, params dto.ListArticlesParams, actorID string) (domain.ArticlePage, error)

	// ListArticleTypes reports every article type and whether the tenant accepts new ones.
	ListArticleTypes(ctx context.Context, tenantID, actorID string) ([]dto.ArticleTypeInfo, error)
}

// ArticleWriterSvc defines write operations for article data
type ArticleWriterSvc interface {
	// CreateArticle persists a new draft authored by the actor.
	CreateArticle(ctx context.Context, tenantID string, req dto.CreateArticleRequest, actorID string) (*domain.Article, error)

	// UpdateArticle applies a partial update guarded by req.ExpectedUpdatedAt.
	UpdateArticle(ctx context.Context, tenantID, articleID string, req dto.UpdateArticleRequest, actorID string) (*domain.Article, error)

	// DeleteArticle removes an article that never left draft and was never viewed.
	DeleteArticle(ctx context.Context, tenantID, articleID, actorID string) error

	// RecordView counts one read of a published article.
	RecordView(ctx context.Context, tenantID, articleID, actorID string) error
}

// ArticleSvcFacade combines all article-related service interfaces
type ArticleSvcFacade interface {
	ArticleReaderSvc
	ArticleWriterSvc
}
