package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/google/uuid"
)

// transitioner runs a workflow move end to end: domain rules, atomic
// persistence, cache invalidation and the outbound event. It is shared by
// user-driven transitions and the scheduler.
type transitioner struct {
	BaseService
	workflowRepo portsrepo.WorkflowWriter
	publisher    ports.EventPublisher
	cache        ports.ArticleCache
}

func (t *transitioner) commit(ctx context.Context, article domain.Article, to domain.ArticleStatus, actor domain.User, comment *string, schedule *domain.ScheduledPublish) (domain.Article, domain.WorkflowTransition, error) {
	next, entry, err := article.Transition(to, actor, comment, uuid.NewString(), t.Now())
	if err != nil {
		return domain.Article{}, domain.WorkflowTransition{}, err
	}

	err = t.workflowRepo.ApplyTransition(ctx, portsrepo.TransitionCommit{
		Article:           next,
		ExpectedUpdatedAt: article.UpdatedAt,
		Entry:             entry,
		Schedule:          schedule,
	})
	if err != nil {
		t.LogError(ctx, err, "Failed to persist transition",
			slog.String("article_id", article.ArticleID),
			slog.String("from", string(article.Status)),
			slog.String("to", string(to)))
		return domain.Article{}, domain.WorkflowTransition{}, fmt.Errorf("failed to apply transition: %w", err)
	}

	t.invalidate(ctx, next.TenantID, next.ArticleID)
	t.publish(ctx, domain.NewArticleTransitioned(entry))

	t.LogInfo(ctx, "Article transitioned",
		slog.String("article_id", next.ArticleID),
		slog.String("tenant_id", next.TenantID),
		slog.String("from", string(entry.FromStatus)),
		slog.String("to", string(entry.ToStatus)),
		slog.String("actor_id", actor.UserID))
	return next, entry, nil
}

// publish sends event after the state change committed; failures are only logged.
func (t *transitioner) publish(ctx context.Context, event domain.Event) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, event); err != nil {
		t.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", string(event.EventType())),
			slog.String("key", event.PartitionKey()))
	}
}

func (t *transitioner) invalidate(ctx context.Context, tenantID, articleID string) {
	if t.cache == nil {
		return
	}
	if err := t.cache.Invalidate(ctx, tenantID, articleID); err != nil {
		t.LogError(ctx, err, "Failed to invalidate cached article", slog.String("article_id", articleID))
	}
}

// workflowService handles user-driven status changes.
type workflowService struct {
	*transitioner
	articleRepo  portsrepo.ArticleReader
	workflowRepo portsrepo.WorkflowReader
	tenantRepo   portsrepo.TenantReader
}

// WorkflowServiceOption is a functional option for configuring the workflow service
type WorkflowServiceOption func(*workflowService)

// WithWorkflowPublisher sets the outbound event publisher.
func WithWorkflowPublisher(p ports.EventPublisher) WorkflowServiceOption {
	return func(s *workflowService) {
		s.publisher = p
	}
}

// WithWorkflowCache sets the article cache to invalidate after transitions.
func WithWorkflowCache(c ports.ArticleCache) WorkflowServiceOption {
	return func(s *workflowService) {
		s.cache = c
	}
}

// WithWorkflowAuthority sets the permission authority.
func WithWorkflowAuthority(a portssvc.PermissionAuthoritySvc) WorkflowServiceOption {
	return func(s *workflowService) {
		s.Authority = a
	}
}

// NewWorkflowService creates the workflow service.
func NewWorkflowService(articleRepo portsrepo.ArticleReader, workflowRepo portsrepo.WorkflowRepositoryFacade, tenantRepo portsrepo.TenantReader, options ...WorkflowServiceOption) portssvc.WorkflowSvc {
	svc := &workflowService{
		transitioner: &transitioner{workflowRepo: workflowRepo},
		articleRepo:  articleRepo,
		workflowRepo: workflowRepo,
		tenantRepo:   tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WorkflowSvc = (*workflowService)(nil)

func (s *workflowService) TransitionStatus(ctx context.Context, tenantID, articleID string, req dto.TransitionRequest, actorID string) (*domain.Article, *domain.WorkflowTransition, error) {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := activeTenant(ctx, s.tenantRepo, tenantID); err != nil {
		return nil, nil, err
	}
	article, err := s.articleRepo.FindArticleByID(ctx, tenantID, articleID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if req.ExpectedUpdatedAt != nil && !req.ExpectedUpdatedAt.Equal(article.UpdatedAt) {
		return nil, nil, apperrors.NewConflictError(fmt.Sprintf("article %s was modified at %s", articleID, article.UpdatedAt))
	}

	next, entry, err := s.commit(ctx, *article, req.ToStatus, *actor, req.Comment, nil)
	if err != nil {
		return nil, nil, err
	}
	return &next, &entry, nil
}

func (s *workflowService) ListTransitions(ctx context.Context, tenantID, articleID, actorID string) ([]domain.WorkflowTransition, error) {
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleRead); err != nil {
		return nil, err
	}
	if _, err := s.articleRepo.FindArticleByID(ctx, tenantID, articleID); err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	transitions, err := s.workflowRepo.ListTransitionsByArticle(ctx, tenantID, articleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transitions", slog.String("article_id", articleID))
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}
	if transitions == nil {
		return []domain.WorkflowTransition{}, nil // Return empty slice, not nil
	}
	return transitions, nil
}

// activeTenant loads a tenant and rejects deactivated ones.
func activeTenant(ctx context.Context, repo portsrepo.TenantReader, tenantID string) (*domain.Tenant, error) {
	tenant, err := repo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	if err := tenant.EnsureActive(); err != nil {
		return nil, err
	}
	return tenant, nil
}
