package services

import (
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher and cache may be nil; events are then dropped and reads go straight to the repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher ports.EventPublisher, cache ports.ArticleCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the authority first since every other service depends on it
	container.Authority = NewAuthorityService(repos.UserRepo)
	authority := container.Authority

	container.Article = NewArticleService(
		repos.ArticleRepo,
		repos.TenantRepo,
		WithArticleAuthority(authority),
		WithArticleCache(cache),
		WithArticleWorkflowReader(repos.WorkflowRepo),
	)

	container.Workflow = NewWorkflowService(
		repos.ArticleRepo,
		repos.WorkflowRepo,
		repos.TenantRepo,
		WithWorkflowAuthority(authority),
		WithWorkflowPublisher(publisher),
		WithWorkflowCache(cache),
	)

	container.Schedule = NewScheduleService(
		repos.ScheduleRepo,
		repos.ArticleRepo,
		repos.TenantRepo,
		repos.WorkflowRepo,
		WithScheduleAuthority(authority),
		WithSchedulePublisher(publisher),
		WithScheduleCache(cache),
	)

	container.Tenant = NewTenantService(repos.TenantRepo, repos.UserRepo, WithTenantAuthority(authority))
	container.User = NewUserService(repos.UserRepo, WithUserAuthority(authority))
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo, repos.WorkflowRepo, repos.TenantRepo, WithAnalyticsAuthority(authority))

	return container
}
