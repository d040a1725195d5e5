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

type PgxScheduleRepository struct {
	BaseRepository
}

// newPgxScheduleRepository creates a new repository for scheduled publishes.
func newPgxScheduleRepository(pool *pgxpool.Pool) *PgxScheduleRepository {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

const scheduleSelectQuery = `
SELECT schedule_id, article_id, tenant_id, scheduled_at, expires_at, status, created_by, created_at, executed_at, error
FROM scheduled_publishes
`

func (r *PgxScheduleRepository) getSchedules(ctx context.Context, filterQuery string, args ...any) ([]domain.ScheduledPublish, error) {
	rows, err := r.Pool.Query(ctx, scheduleSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query schedules", err)
	}
	defer rows.Close()
	modelSchedules, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ScheduledPublish])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect schedule rows", err)
	}
	return mapping.ToDomainScheduledPublishSlice(modelSchedules), nil
}

func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, tenantID, scheduleID string) (*domain.ScheduledPublish, error) {
	schedules, err := r.getSchedules(ctx, "WHERE tenant_id = $1 AND schedule_id = $2", tenantID, scheduleID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, apperrors.NewNotFoundError("schedule " + scheduleID + " not found")
	}
	return &schedules[0], nil
}

func (r *PgxScheduleRepository) ListSchedules(ctx context.Context, tenantID string, status *domain.ScheduleStatus, limit, offset int) ([]domain.ScheduledPublish, error) {
	if status != nil {
		return r.getSchedules(ctx,
			"WHERE tenant_id = $1 AND status = $2 ORDER BY scheduled_at, schedule_id LIMIT $3 OFFSET $4",
			tenantID, string(*status), limit, offset)
	}
	return r.getSchedules(ctx,
		"WHERE tenant_id = $1 ORDER BY scheduled_at, schedule_id LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
}

func (r *PgxScheduleRepository) ListDueSchedules(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledPublish, error) {
	return r.getSchedules(ctx,
		"WHERE status = 'pending' AND scheduled_at <= $1 ORDER BY scheduled_at, schedule_id LIMIT $2",
		now, limit)
}

func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.ScheduledPublish) error {
	m := mapping.ToModelScheduledPublish(schedule)
	query := `
		INSERT INTO scheduled_publishes (
			schedule_id, article_id, tenant_id, scheduled_at, expires_at, status, created_by, created_at, executed_at, error
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ScheduleID, m.ArticleID, m.TenantID, m.ScheduledAt, m.ExpiresAt,
		m.Status, m.CreatedBy, m.CreatedAt, m.ExecutedAt, m.Error,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("article " + m.ArticleID + " already has a pending schedule")
		}
		return apperrors.NewAppError(500, "failed to save schedule", err)
	}
	return nil
}

func (r *PgxScheduleRepository) UpdateScheduleStatus(ctx context.Context, schedule domain.ScheduledPublish) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		return finishSchedule(ctx, tx, mapping.ToModelScheduledPublish(schedule))
	})
}
