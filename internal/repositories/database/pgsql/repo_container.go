package pgsql

import (
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ArticleRepo:   newPgxArticleRepository(dbPool),
		WorkflowRepo:  newPgxWorkflowRepository(dbPool),
		ScheduleRepo:  newPgxScheduleRepository(dbPool),
		TenantRepo:    newPgxTenantRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		AnalyticsRepo: newPgxAnalyticsRepository(dbPool),
	}
}
