package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// ScheduleReader defines read operations for scheduled publishes
type ScheduleReader interface {
	// FindScheduleByID retrieves a schedule inside a tenant.
	FindScheduleByID(ctx context.Context, tenantID, scheduleID string) (*domain.ScheduledPublish, error)

	// ListSchedules retrieves a tenant's schedules, optionally filtered by status, soonest first.
	ListSchedules(ctx context.Context, tenantID string, status *domain.ScheduleStatus, limit, offset int) ([]domain.ScheduledPublish, error)

	// ListDueSchedules retrieves pending schedules across tenants that are due at now.
	ListDueSchedules(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledPublish, error)
}

// ScheduleWriter defines write operations for scheduled publishes
type ScheduleWriter interface {
	// SaveSchedule persists a new pending schedule. Returns apperrors.ErrConflict
	// if the article already has one.
	SaveSchedule(ctx context.Context, schedule domain.ScheduledPublish) error

	// UpdateScheduleStatus stores the final state of a schedule that is still
	// pending in the database. Returns apperrors.ErrConflict otherwise.
	UpdateScheduleStatus(ctx context.Context, schedule domain.ScheduledPublish) error
}

// ScheduleRepositoryFacade combines all schedule-related repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
