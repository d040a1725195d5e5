package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/core/ports"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type scheduleService struct {
	*transitioner
	scheduleRepo portsrepo.ScheduleRepositoryFacade
	articleRepo  portsrepo.ArticleReader
	tenantRepo   portsrepo.TenantReader
}

// ScheduleServiceOption is a functional option for configuring the schedule service
type ScheduleServiceOption func(*scheduleService)

// WithSchedulePublisher sets the outbound event publisher.
func WithSchedulePublisher(p ports.EventPublisher) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.publisher = p
	}
}

// WithScheduleCache sets the article cache to invalidate on changes.
func WithScheduleCache(c ports.ArticleCache) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.cache = c
	}
}

// WithScheduleAuthority sets the permission authority.
func WithScheduleAuthority(a portssvc.PermissionAuthoritySvc) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.Authority = a
	}
}

// NewScheduleService creates the schedule service used by both the API and the scheduler.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade, articleRepo portsrepo.ArticleReader, tenantRepo portsrepo.TenantReader, workflowRepo portsrepo.WorkflowWriter, options ...ScheduleServiceOption) portssvc.ScheduleSvcFacade {
	svc := &scheduleService{
		transitioner: &transitioner{workflowRepo: workflowRepo},
		scheduleRepo: scheduleRepo,
		articleRepo:  articleRepo,
		tenantRepo:   tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) SchedulePublish(ctx context.Context, tenantID, articleID string, req dto.SchedulePublishRequest, actorID string) (*domain.ScheduledPublish, error) {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}
	tenant, err := activeTenant(ctx, s.tenantRepo, tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.Settings.Features.Scheduling {
		return nil, apperrors.NewValidationFailedError("scheduling is not enabled for this tenant")
	}
	article, err := s.articleRepo.FindArticleByID(ctx, tenantID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if err := actor.AuthorizeArticle(*article, domain.PermArticlePublish); err != nil {
		return nil, err
	}

	schedule, err := domain.NewScheduledPublish(uuid.NewString(), *article, req.ScheduledAt, req.ExpiresAt, actor.UserID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.SaveSchedule(ctx, schedule); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save schedule", slog.String("article_id", articleID))
		}
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	s.invalidate(ctx, tenantID, articleID)

	s.LogInfo(ctx, "Publish scheduled",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.String("article_id", articleID),
		slog.Time("scheduled_at", schedule.ScheduledAt))
	return &schedule, nil
}

func (s *scheduleService) CancelSchedule(ctx context.Context, tenantID, scheduleID, actorID string) (*domain.ScheduledPublish, error) {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, tenantID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", scheduleID, err)
	}
	article, err := s.articleRepo.FindArticleByID(ctx, tenantID, schedule.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", schedule.ArticleID, err)
	}
	if err := actor.AuthorizeArticle(*article, domain.PermArticleUpdate); err != nil {
		return nil, err
	}

	cancelled, err := schedule.Cancel(s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.UpdateScheduleStatus(ctx, cancelled); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to cancel schedule", slog.String("schedule_id", scheduleID))
		}
		return nil, fmt.Errorf("failed to cancel schedule %s: %w", scheduleID, err)
	}
	s.invalidate(ctx, tenantID, schedule.ArticleID)

	s.LogInfo(ctx, "Schedule cancelled", slog.String("schedule_id", scheduleID), slog.String("actor_id", actor.UserID))
	return &cancelled, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, tenantID string, params dto.ListSchedulesParams, actorID string) ([]domain.ScheduledPublish, error) {
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermArticleRead); err != nil {
		return nil, err
	}
	if params.Status != nil {
		switch *params.Status {
		case domain.SchedulePending, domain.SchedulePublished, domain.ScheduleFailed, domain.ScheduleCancelled:
		default:
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown schedule status %q", *params.Status))
		}
	}
	offset := max(params.Offset, 0)
	schedules, err := s.scheduleRepo.ListSchedules(ctx, tenantID, params.Status, pagination.NormalizeLimit(params.Limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedules", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if schedules == nil {
		return []domain.ScheduledPublish{}, nil
	}
	return schedules, nil
}

// ExecuteDueSchedules publishes each due schedule with the system actor.
// A failing schedule is marked failed and never retried; the batch continues.
func (s *scheduleService) ExecuteDueSchedules(ctx context.Context, now time.Time, batchSize int) (dto.ScheduleRunReport, error) {
	var report dto.ScheduleRunReport
	due, err := s.scheduleRepo.ListDueSchedules(ctx, now, batchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due schedules")
		return report, fmt.Errorf("failed to list due schedules: %w", err)
	}

	for _, schedule := range due {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.executeSchedule(ctx, schedule, now); err != nil {
			report.Failed++
			s.failSchedule(ctx, schedule, err, now)
			continue
		}
		report.Published++
	}
	return report, nil
}

func (s *scheduleService) executeSchedule(ctx context.Context, schedule domain.ScheduledPublish, now time.Time) error {
	article, err := s.articleRepo.FindArticleByID(ctx, schedule.TenantID, schedule.ArticleID)
	if err != nil {
		return fmt.Errorf("failed to load article %s: %w", schedule.ArticleID, err)
	}
	if schedule.ExpiresAt != nil {
		article.ExpiresAt = schedule.ExpiresAt
	}
	done, err := schedule.MarkPublished(now)
	if err != nil {
		return err
	}
	comment := fmt.Sprintf("scheduled publish %s", schedule.ScheduleID)
	_, _, err = s.commit(ctx, *article, domain.StatusPublished, domain.SystemActor(schedule.TenantID), &comment, &done)
	return err
}

func (s *scheduleService) failSchedule(ctx context.Context, schedule domain.ScheduledPublish, cause error, now time.Time) {
	s.LogError(ctx, cause, "Scheduled publish failed",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.String("article_id", schedule.ArticleID))

	failed, err := schedule.MarkFailed(cause, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark schedule failed", slog.String("schedule_id", schedule.ScheduleID))
		return
	}
	if err := s.scheduleRepo.UpdateScheduleStatus(ctx, failed); err != nil {
		s.LogError(ctx, err, "Failed to store failed schedule", slog.String("schedule_id", schedule.ScheduleID))
		return
	}
	s.publish(ctx, domain.SchedulePublishFailed{
		ScheduleID: schedule.ScheduleID,
		ArticleID:  schedule.ArticleID,
		TenantID:   schedule.TenantID,
		Error:      cause.Error(),
		Timestamp:  now.UTC(),
	})
}

// ArchiveExpiredArticles archives published articles past their expiry.
func (s *scheduleService) ArchiveExpiredArticles(ctx context.Context, now time.Time, batchSize int) (int, error) {
	expired, err := s.articleRepo.ListExpiredArticles(ctx, now, batchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expired articles")
		return 0, fmt.Errorf("failed to list expired articles: %w", err)
	}
	archived := 0
	comment := "expired"
	for _, article := range expired {
		if err := ctx.Err(); err != nil {
			return archived, err
		}
		if !article.IsExpired(now) {
			continue
		}
		if _, _, err := s.commit(ctx, article, domain.StatusArchived, domain.SystemActor(article.TenantID), &comment, nil); err != nil {
			s.LogError(ctx, err, "Failed to archive expired article", slog.String("article_id", article.ArticleID))
			continue
		}
		archived++
	}
	return archived, nil
}
