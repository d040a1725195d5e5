package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepositoryFacade
	workflowRepo  portsrepo.WorkflowReader
	tenantRepo    portsrepo.TenantReader
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnalyticsAuthority sets the permission authority.
func WithAnalyticsAuthority(a portssvc.PermissionAuthoritySvc) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.Authority = a
	}
}

// NewAnalyticsService creates the dashboard service.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepositoryFacade, workflowRepo portsrepo.WorkflowReader, tenantRepo portsrepo.TenantReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvc {
	svc := &analyticsService{
		analyticsRepo: analyticsRepo,
		workflowRepo:  workflowRepo,
		tenantRepo:    tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

// DashboardMetrics runs the aggregate queries concurrently; the first
// failure cancels the rest.
func (s *analyticsService) DashboardMetrics(ctx context.Context, tenantID, actorID string) (*domain.DashboardMetrics, error) {
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermAnalyticsView); err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	if !tenant.Settings.Features.Analytics {
		return nil, apperrors.NewValidationFailedError("analytics is not enabled for this tenant")
	}

	var (
		counts    domain.StatusCounts
		byType    []domain.TypeCount
		top       []domain.TopArticle
		views     int64
		scheduled int64
		recent    []domain.WorkflowTransition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.analyticsRepo.CountArticlesByStatus(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		byType, err = s.analyticsRepo.CountArticlesByType(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.analyticsRepo.ListTopArticles(gctx, tenantID, domain.TopArticlesLimit)
		return err
	})
	g.Go(func() (err error) {
		views, err = s.analyticsRepo.SumViews(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		scheduled, err = s.analyticsRepo.CountPendingSchedules(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.workflowRepo.ListRecentTransitions(gctx, tenantID, domain.RecentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard metrics", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to build dashboard metrics: %w", err)
	}

	metrics := domain.NewDashboardMetrics(tenantID, counts, scheduled, views)
	if byType != nil {
		metrics.ArticlesByType = byType
	}
	if top != nil {
		metrics.TopArticles = top
	}
	if recent != nil {
		metrics.RecentActivity = recent
	}
	return &metrics, nil
}
