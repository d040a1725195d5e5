package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ArticleRepo   ArticleRepositoryFacade
	WorkflowRepo  WorkflowRepositoryFacade
	ScheduleRepo  ScheduleRepositoryFacade
	TenantRepo    TenantRepositoryFacade
	UserRepo      UserRepositoryFacade
	AnalyticsRepo AnalyticsRepositoryFacade
}
