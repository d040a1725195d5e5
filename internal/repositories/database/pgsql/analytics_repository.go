package pgsql

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAnalyticsRepository runs read-only aggregate queries over articles.
type PgxAnalyticsRepository struct {
	BaseRepository
}

func newPgxAnalyticsRepository(pool *pgxpool.Pool) *PgxAnalyticsRepository {
	return &PgxAnalyticsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AnalyticsRepositoryFacade = (*PgxAnalyticsRepository)(nil)

func (r *PgxAnalyticsRepository) CountArticlesByStatus(ctx context.Context, tenantID string) (domain.StatusCounts, error) {
	rows, err := r.Pool.Query(ctx,
		"SELECT status, COUNT(*) FROM articles WHERE tenant_id = $1 GROUP BY status", tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count articles by status", err)
	}
	defer rows.Close()

	counts := domain.StatusCounts{}
	var (
		status string
		n      int64
	)
	_, err = pgx.ForEachRow(rows, []any{&status, &n}, func() error {
		counts[domain.ArticleStatus(status)] = n
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan status counts", err)
	}
	return counts, nil
}

func (r *PgxAnalyticsRepository) CountArticlesByType(ctx context.Context, tenantID string) ([]domain.TypeCount, error) {
	rows, err := r.Pool.Query(ctx,
		"SELECT type, COUNT(*) AS count FROM articles WHERE tenant_id = $1 GROUP BY type ORDER BY count DESC, type",
		tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count articles by type", err)
	}
	defer rows.Close()
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TypeCount, error) {
		var tc domain.TypeCount
		err := row.Scan(&tc.Type, &tc.Count)
		return tc, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan type counts", err)
	}
	return counts, nil
}

func (r *PgxAnalyticsRepository) ListTopArticles(ctx context.Context, tenantID string, limit int) ([]domain.TopArticle, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT article_id, title, type, view_count
		FROM articles
		WHERE tenant_id = $1 AND status = 'published'
		ORDER BY view_count DESC, article_id
		LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query top articles", err)
	}
	defer rows.Close()
	top, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TopArticle, error) {
		var ta domain.TopArticle
		err := row.Scan(&ta.ArticleID, &ta.Title, &ta.Type, &ta.ViewCount)
		return ta, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan top articles", err)
	}
	return top, nil
}

func (r *PgxAnalyticsRepository) SumViews(ctx context.Context, tenantID string) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(view_count), 0)::bigint FROM articles WHERE tenant_id = $1", tenantID).Scan(&total)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum views", err)
	}
	return total, nil
}

func (r *PgxAnalyticsRepository) CountPendingSchedules(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM scheduled_publishes WHERE tenant_id = $1 AND status = 'pending'", tenantID).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count pending schedules", err)
	}
	return n, nil
}
