package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/content_platform_app/internal/models"
	"github.com/SscSPs/content_platform_app/internal/utils/mapping"
	"github.com/SscSPs/content_platform_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for article data.
func newPgxArticleRepository(pool *pgxpool.Pool) *PgxArticleRepository {
	return &PgxArticleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

// scheduled_publish_at comes from the article's pending schedule, if any.
const articleSelectQuery = `
SELECT
	a.article_id, a.tenant_id, a.author_id, a.type, a.title, a.slug, a.status, a.access_control,
	a.content, a.excerpt, a.featured_image, a.tags, a.categories, a.metadata, a.allowed_roles,
	a.details, a.expires_at, a.published_at,
	(SELECT sp.scheduled_at FROM scheduled_publishes sp
	  WHERE sp.article_id = a.article_id AND sp.status = 'pending') AS scheduled_publish_at,
	a.created_at, a.updated_at, a.view_count
FROM articles a
`

func (r *PgxArticleRepository) getArticles(ctx context.Context, filterQuery string, args ...any) ([]domain.Article, error) {
	rows, err := r.Pool.Query(ctx, articleSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query articles", err)
	}
	defer rows.Close()
	modelArticles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Article])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect article rows", err)
	}
	articles, err := mapping.ToDomainArticleSlice(modelArticles)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map article rows", err)
	}
	return articles, nil
}

func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, tenantID, articleID string) (*domain.Article, error) {
	articles, err := r.getArticles(ctx, "WHERE a.tenant_id = $1 AND a.article_id = $2", tenantID, articleID)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, apperrors.NewNotFoundError("article " + articleID + " not found")
	}
	return &articles[0], nil
}

// ListArticles pages by (created_at, article_id) descending. One extra row is
// fetched to tell whether another page exists.
func (r *PgxArticleRepository) ListArticles(ctx context.Context, tenantID string, filter domain.ArticleFilter) (domain.ArticlePage, error) {
	limit := pagination.NormalizeLimit(filter.Limit)
	conds := []string{"a.tenant_id = $1"}
	args := []any{tenantID}
	add := func(cond string, vals ...any) {
		placeholders := make([]any, len(vals))
		for i, v := range vals {
			args = append(args, v)
			placeholders[i] = len(args)
		}
		conds = append(conds, fmt.Sprintf(cond, placeholders...))
	}
	if filter.Status != nil {
		add("a.status = $%d", string(*filter.Status))
	}
	if filter.Type != nil {
		add("a.type = $%d", string(*filter.Type))
	}
	if filter.AuthorID != nil {
		add("a.author_id = $%d", *filter.AuthorID)
	}
	if filter.After != nil {
		add("(a.created_at, a.article_id) < ($%d, $%d)", filter.After.At, filter.After.ID)
	}
	args = append(args, limit+1)
	query := fmt.Sprintf("WHERE %s ORDER BY a.created_at DESC, a.article_id DESC LIMIT $%d",
		strings.Join(conds, " AND "), len(args))

	articles, err := r.getArticles(ctx, query, args...)
	if err != nil {
		return domain.ArticlePage{}, err
	}
	page := domain.ArticlePage{Articles: articles}
	if len(articles) > limit {
		page.Articles = articles[:limit]
		last := page.Articles[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{At: last.CreatedAt, ID: last.ArticleID})
		page.NextToken = &token
	}
	return page, nil
}

func (r *PgxArticleRepository) ListExpiredArticles(ctx context.Context, now time.Time, limit int) ([]domain.Article, error) {
	return r.getArticles(ctx,
		"WHERE a.status = 'published' AND a.expires_at IS NOT NULL AND a.expires_at <= $1 ORDER BY a.expires_at LIMIT $2",
		now, limit)
}

func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	m, err := mapping.ToModelArticle(article)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map article", err)
	}
	query := `
		INSERT INTO articles (
			article_id, tenant_id, author_id, type, title, slug, status, access_control,
			content, excerpt, featured_image, tags, categories, metadata, allowed_roles,
			details, expires_at, published_at, created_at, updated_at, view_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ArticleID, m.TenantID, m.AuthorID, m.Type, m.Title, m.Slug, m.Status, m.AccessControl,
		m.Content, m.Excerpt, m.FeaturedImage, m.Tags, m.Categories, m.Metadata, m.AllowedRoles,
		m.Details, m.ExpiresAt, m.PublishedAt, m.CreatedAt, m.UpdatedAt, m.ViewCount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("article slug %q already exists in tenant", m.Slug))
		}
		return apperrors.NewAppError(500, "failed to save article", err)
	}
	return nil
}

// UpdateArticle rewrites the editable columns. Status and published_at only
// change through workflow transitions.
func (r *PgxArticleRepository) UpdateArticle(ctx context.Context, article domain.Article, expectedUpdatedAt time.Time) error {
	m, err := mapping.ToModelArticle(article)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map article", err)
	}
	query := `
		UPDATE articles
		SET title = $1, slug = $2, access_control = $3, content = $4, excerpt = $5,
			featured_image = $6, tags = $7, categories = $8, metadata = $9, allowed_roles = $10,
			details = $11, expires_at = $12, updated_at = $13
		WHERE article_id = $14 AND tenant_id = $15 AND updated_at = $16;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Slug, m.AccessControl, m.Content, m.Excerpt,
		m.FeaturedImage, m.Tags, m.Categories, m.Metadata, m.AllowedRoles,
		m.Details, m.ExpiresAt, m.UpdatedAt,
		m.ArticleID, m.TenantID, expectedUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("article slug %q already exists in tenant", m.Slug))
		}
		return apperrors.NewAppError(500, "failed to update article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, m.TenantID, m.ArticleID)
	}
	return nil
}

// missingOrStale explains why a conditional write touched no rows.
func (r *PgxArticleRepository) missingOrStale(ctx context.Context, tenantID, articleID string) error {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1 AND tenant_id = $2)",
		articleID, tenantID).Scan(&exists)
	if err != nil {
		return apperrors.NewAppError(500, "failed to check article", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("article " + articleID + " not found")
	}
	return apperrors.NewConflictError("article " + articleID + " was modified concurrently")
}

func (r *PgxArticleRepository) DeleteArticle(ctx context.Context, tenantID, articleID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		"DELETE FROM articles WHERE article_id = $1 AND tenant_id = $2 AND status = 'draft'",
		articleID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete article", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("draft article " + articleID + " not found")
	}
	return nil
}

func (r *PgxArticleRepository) IncrementViewCount(ctx context.Context, tenantID, articleID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		"UPDATE articles SET view_count = view_count + 1 WHERE article_id = $1 AND tenant_id = $2 AND status = 'published'",
		articleID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record view", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("published article " + articleID + " not found")
	}
	return nil
}
