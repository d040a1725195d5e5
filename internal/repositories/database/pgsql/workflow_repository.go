package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/content_platform_app/internal/models"
	"github.com/SscSPs/content_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkflowRepository struct {
	BaseRepository
}

// newPgxWorkflowRepository creates a new repository for the transition log.
func newPgxWorkflowRepository(pool *pgxpool.Pool) *PgxWorkflowRepository {
	return &PgxWorkflowRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkflowRepositoryFacade = (*PgxWorkflowRepository)(nil)

const transitionSelectQuery = `
SELECT transition_id, article_id, tenant_id, from_status, to_status, user_id, user_name, comment, occurred_at
FROM workflow_transitions
`

func (r *PgxWorkflowRepository) getTransitions(ctx context.Context, filterQuery string, args ...any) ([]domain.WorkflowTransition, error) {
	rows, err := r.Pool.Query(ctx, transitionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workflow transitions", err)
	}
	defer rows.Close()
	modelTransitions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkflowTransition])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workflow transition rows", err)
	}
	return mapping.ToDomainWorkflowTransitionSlice(modelTransitions), nil
}

func (r *PgxWorkflowRepository) ListTransitionsByArticle(ctx context.Context, tenantID, articleID string) ([]domain.WorkflowTransition, error) {
	return r.getTransitions(ctx,
		"WHERE tenant_id = $1 AND article_id = $2 ORDER BY occurred_at, transition_id",
		tenantID, articleID)
}

func (r *PgxWorkflowRepository) ListRecentTransitions(ctx context.Context, tenantID string, limit int) ([]domain.WorkflowTransition, error) {
	return r.getTransitions(ctx,
		"WHERE tenant_id = $1 ORDER BY occurred_at DESC, transition_id DESC LIMIT $2",
		tenantID, limit)
}

// ApplyTransition writes the new article status, the log entry and any
// schedule outcome in a single transaction.
func (r *PgxWorkflowRepository) ApplyTransition(ctx context.Context, commit portsrepo.TransitionCommit) error {
	article := commit.Article
	entry := mapping.ToModelWorkflowTransition(commit.Entry)

	return r.InTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE articles
			SET status = $1, published_at = $2, expires_at = $3, updated_at = $4
			WHERE article_id = $5 AND tenant_id = $6 AND updated_at = $7;`,
			string(article.Status), article.PublishedAt, article.ExpiresAt, article.UpdatedAt,
			article.ArticleID, article.TenantID, commit.ExpectedUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update article status", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewConflictError("article " + article.ArticleID + " was modified concurrently")
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO workflow_transitions (
				transition_id, article_id, tenant_id, from_status, to_status, user_id, user_name, comment, occurred_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			entry.TransitionID, entry.ArticleID, entry.TenantID, entry.FromStatus, entry.ToStatus,
			entry.UserID, entry.UserName, entry.Comment, entry.OccurredAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to append workflow transition", err)
		}

		if commit.Schedule != nil {
			return finishSchedule(ctx, tx, mapping.ToModelScheduledPublish(*commit.Schedule))
		}
		if article.Status == domain.StatusPublished {
			return supersedePendingSchedule(ctx, tx, article.ArticleID, article.UpdatedAt)
		}
		return nil
	})
}

// finishSchedule stores a schedule's final state if it is still pending.
func finishSchedule(ctx context.Context, tx pgx.Tx, s models.ScheduledPublish) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE scheduled_publishes
		SET status = $1, executed_at = $2, error = $3
		WHERE schedule_id = $4 AND status = 'pending';`,
		s.Status, s.ExecutedAt, s.Error, s.ScheduleID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update schedule", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("schedule " + s.ScheduleID + " is no longer pending")
	}
	return nil
}

// supersedePendingSchedule cancels the pending schedule of an article that was
// published by hand, so the scheduler does not try to publish it again.
func supersedePendingSchedule(ctx context.Context, tx pgx.Tx, articleID string, at time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE scheduled_publishes
		SET status = 'cancelled', executed_at = $1, error = 'superseded by manual publish'
		WHERE article_id = $2 AND status = 'pending';`,
		at, articleID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to cancel superseded schedule", err)
	}
	return nil
}
