package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// articleService implements the article CRUD operations.
type articleService struct {
	BaseService
	articleRepo  portsrepo.ArticleRepositoryFacade
	tenantRepo   portsrepo.TenantReader
	workflowRepo portsrepo.WorkflowReader
	cache        ports.ArticleCache
}

// ArticleServiceOption is a functional option for configuring the article service
type ArticleServiceOption func(*articleService)

// WithArticleAuthority sets the permission authority.
func WithArticleAuthority(a portssvc.PermissionAuthoritySvc) ArticleServiceOption {
	return func(s *articleService) {
		s.Authority = a
	}
}

// WithArticleCache enables read-through caching of single articles.
func WithArticleCache(c ports.ArticleCache) ArticleServiceOption {
	return func(s *articleService) {
		s.cache = c
	}
}

// WithArticleWorkflowReader lets DeleteArticle refuse articles with history.
func WithArticleWorkflowReader(r portsrepo.WorkflowReader) ArticleServiceOption {
	return func(s *articleService) {
		s.workflowRepo = r
	}
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade, tenantRepo portsrepo.TenantReader, options ...ArticleServiceOption) portssvc.ArticleSvcFacade {
	svc := &articleService{
		articleRepo: articleRepo,
		tenantRepo:  tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

func (s *articleService) CreateArticle(ctx context.Context, tenantID string, req dto.CreateArticleRequest, actorID string) (*domain.Article, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleCreate)
	if err != nil {
		return nil, err
	}
	tenant, err := activeTenant(ctx, s.tenantRepo, tenantID)
	if err != nil {
		return nil, err
	}

	article, err := domain.NewArticle(uuid.NewString(), tenantID, actor.UserID, req.Type, req.ToArticleBase(), req.Details, s.Now())
	if err != nil {
		return nil, err
	}
	if err := article.CheckTenant(*tenant, true); err != nil {
		return nil, err
	}

	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		s.LogError(ctx, err, "Failed to save article",
			slog.String("tenant_id", tenantID),
			slog.String("type", string(req.Type)))
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	s.LogInfo(ctx, "Article created",
		slog.String("article_id", article.ArticleID),
		slog.String("tenant_id", tenantID),
		slog.String("type", string(article.Type())))
	return &article, nil
}

func (s *articleService) GetArticle(ctx context.Context, tenantID, articleID, actorID string) (*domain.Article, error) {
	viewer, err := s.optionalViewer(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	article, err := s.loadArticle(ctx, *tenant, articleID)
	if err != nil {
		return nil, err
	}
	if !article.CanView(viewer, *tenant) {
		if article.Status != domain.StatusPublished && viewer == nil {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("article %s not found", articleID))
		}
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("article %s is not visible to the caller", articleID))
	}
	return article, nil
}

// loadArticle reads through the cache when the tenant enables it.
func (s *articleService) loadArticle(ctx context.Context, tenant domain.Tenant, articleID string) (*domain.Article, error) {
	load := func(ctx context.Context) (*domain.Article, error) {
		return s.articleRepo.FindArticleByID(ctx, tenant.TenantID, articleID)
	}
	var (
		article *domain.Article
		err     error
	)
	if s.cache != nil && tenant.Settings.Caching.Enabled {
		article, err = s.cache.GetOrLoad(ctx, tenant.TenantID, articleID, tenant.Settings.Caching.TTL(), load)
	} else {
		article, err = load(ctx)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load article", slog.String("article_id", articleID))
		}
		return nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	return article, nil
}

// optionalViewer resolves the caller, or returns nil for anonymous reads.
func (s *articleService) optionalViewer(ctx context.Context, tenantID, actorID string) (*domain.User, error) {
	if actorID == "" {
		return nil, nil
	}
	return s.ResolveActor(ctx, tenantID, actorID)
}

func (s *articleService) ListArticles(ctx context.Context, tenantID string, params dto.ListArticlesParams, actorID string) (domain.ArticlePage, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleRead)
	if err != nil {
		return domain.ArticlePage{}, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return domain.ArticlePage{}, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	filter := domain.ArticleFilter{
		Status:   params.Status,
		Type:     params.Type,
		AuthorID: params.AuthorID,
		Limit:    pagination.NormalizeLimit(params.Limit),
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return domain.ArticlePage{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown status %q", *filter.Status))
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return domain.ArticlePage{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown article type %q", *filter.Type))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(*params.NextToken)
		if err != nil {
			return domain.ArticlePage{}, apperrors.NewValidationFailedError("invalid nextToken")
		}
		filter.After = &cursor
	}

	page, err := s.articleRepo.ListArticles(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list articles", slog.String("tenant_id", tenantID))
		return domain.ArticlePage{}, fmt.Errorf("failed to list articles: %w", err)
	}

	// The token still points past the last fetched row even when some rows
	// are hidden from this caller.
	visible := make([]domain.Article, 0, len(page.Articles))
	for _, a := range page.Articles {
		if a.CanView(actor, *tenant) {
			visible = append(visible, a)
		}
	}
	page.Articles = visible
	return page, nil
}

func (s *articleService) ListArticleTypes(ctx context.Context, tenantID, actorID string) ([]dto.ArticleTypeInfo, error) {
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleRead); err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	types := domain.AllArticleTypes()
	infos := make([]dto.ArticleTypeInfo, len(types))
	for i, t := range types {
		infos[i] = dto.ArticleTypeInfo{Type: t, Allowed: tenant.AllowsArticleType(t)}
	}
	return infos, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, tenantID, articleID string, req dto.UpdateArticleRequest, actorID string) (*domain.Article, error) {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}
	tenant, err := activeTenant(ctx, s.tenantRepo, tenantID)
	if err != nil {
		return nil, err
	}
	current, err := s.articleRepo.FindArticleByID(ctx, tenantID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if err := actor.AuthorizeArticle(*current, domain.PermArticleUpdate); err != nil {
		return nil, err
	}
	if !req.ExpectedUpdatedAt.Equal(current.UpdatedAt) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("article %s was modified at %s", articleID, current.UpdatedAt))
	}

	next, err := current.Apply(req.ToPatch(), s.Now())
	if err != nil {
		return nil, err
	}
	if err := next.CheckTenant(*tenant, false); err != nil {
		return nil, err
	}

	if err := s.articleRepo.UpdateArticle(ctx, next, current.UpdatedAt); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update article", slog.String("article_id", articleID))
		}
		return nil, fmt.Errorf("failed to update article %s: %w", articleID, err)
	}
	s.invalidate(ctx, tenantID, articleID)

	s.LogInfo(ctx, "Article updated", slog.String("article_id", articleID), slog.String("actor_id", actor.UserID))
	return &next, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, tenantID, articleID, actorID string) error {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return err
	}
	article, err := s.articleRepo.FindArticleByID(ctx, tenantID, articleID)
	if err != nil {
		return fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if err := actor.AuthorizeArticle(*article, domain.PermArticleDelete); err != nil {
		return err
	}
	if err := article.EnsureDeletable(); err != nil {
		return err
	}
	if s.workflowRepo != nil {
		history, err := s.workflowRepo.ListTransitionsByArticle(ctx, tenantID, articleID)
		if err != nil {
			return fmt.Errorf("failed to check article history: %w", err)
		}
		if len(history) > 0 {
			return apperrors.NewValidationFailedError("article has workflow history, archive it instead")
		}
	}

	if err := s.articleRepo.DeleteArticle(ctx, tenantID, articleID); err != nil {
		s.LogError(ctx, err, "Failed to delete article", slog.String("article_id", articleID))
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	s.invalidate(ctx, tenantID, articleID)
	s.LogInfo(ctx, "Article deleted", slog.String("article_id", articleID), slog.String("actor_id", actor.UserID))
	return nil
}

// RecordView does not invalidate the cache; cached view counts lag until expiry.
func (s *articleService) RecordView(ctx context.Context, tenantID, articleID, actorID string) error {
	viewer, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleRead)
	if err != nil {
		return err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	article, err := s.loadArticle(ctx, *tenant, articleID)
	if err != nil {
		return err
	}
	if article.Status != domain.StatusPublished {
		return apperrors.NewValidationFailedError(fmt.Sprintf("article %s is not published", articleID))
	}
	if !article.CanView(viewer, *tenant) {
		return apperrors.NewForbiddenError(fmt.Sprintf("article %s is not visible to the caller", articleID))
	}
	if err := s.articleRepo.IncrementViewCount(ctx, tenantID, articleID); err != nil {
		s.LogError(ctx, err, "Failed to record view", slog.String("article_id", articleID))
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

func (s *articleService) invalidate(ctx context.Context, tenantID, articleID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tenantID, articleID); err != nil {
		s.LogError(ctx, err, "Failed to invalidate cached article", slog.String("article_id", articleID))
	}
}
