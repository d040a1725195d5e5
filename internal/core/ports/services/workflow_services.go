package services

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/dto"
)

// WorkflowSvc moves articles through their status lifecycle.
type WorkflowSvc interface {
	// TransitionStatus applies one workflow move on behalf of the actor.
	TransitionStatus(ctx context.Context, tenantID, articleID string, req dto.TransitionRequest, actorID string) (*domain.Article, *domain.WorkflowTransition, error)

	// ListTransitions returns the article's history, oldest first.
	ListTransitions(ctx context.Context, tenantID, articleID, actorID string) ([]domain.WorkflowTransition, error)
}

// ScheduleSvc manages scheduled publishing requests.
type ScheduleSvc interface {
	SchedulePublish(ctx context.Context, tenantID, articleID string, req dto.SchedulePublishRequest, actorID string) (*domain.ScheduledPublish, error)
	CancelSchedule(ctx context.Context, tenantID, scheduleID, actorID string) (*domain.ScheduledPublish, error)
	ListSchedules(ctx context.Context, tenantID string, params dto.ListSchedulesParams, actorID string) ([]domain.ScheduledPublish, error)
}

// ScheduleRunnerSvc is driven by the background scheduler, not by users.
type ScheduleRunnerSvc interface {
	// ExecuteDueSchedules publishes every pending schedule due at now, up to batchSize.
	ExecuteDueSchedules(ctx context.Context, now time.Time, batchSize int) (dto.ScheduleRunReport, error)

	// ArchiveExpiredArticles archives published articles whose expiry has passed.
	ArchiveExpiredArticles(ctx context.Context, now time.Time, batchSize int) (int, error)
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleSvc
	ScheduleRunnerSvc
}
