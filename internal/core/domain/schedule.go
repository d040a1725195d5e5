package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
)

// ScheduleStatus tracks a scheduled publish request.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePublished ScheduleStatus = "published"
	ScheduleFailed    ScheduleStatus = "failed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// ScheduledPublish asks the scheduler to publish an article at ScheduledAt.
// An article has at most one pending schedule.
type ScheduledPublish struct {
	ScheduleID  string         `json:"id"`
	ArticleID   string         `json:"articleId"`
	TenantID    string         `json:"tenantId"`
	ScheduledAt time.Time      `json:"scheduledAt"`
	ExpiresAt   *time.Time     `json:"expiresAt,omitempty"`
	Status      ScheduleStatus `json:"status"`
	CreatedBy   string         `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	ExecutedAt  *time.Time     `json:"executedAt,omitempty"`
	Error       *string        `json:"error,omitempty"`
}

// NewScheduledPublish validates the request against the article's state.
func NewScheduledPublish(scheduleID string, article Article, scheduledAt time.Time, expiresAt *time.Time, createdBy string, now time.Time) (ScheduledPublish, error) {
	if !scheduledAt.After(now) {
		return ScheduledPublish{}, apperrors.NewValidationFailedError("scheduledAt must be in the future")
	}
	if expiresAt != nil && !expiresAt.After(scheduledAt) {
		return ScheduledPublish{}, apperrors.NewValidationFailedError("expiresAt must be after scheduledAt")
	}
	if article.Status == StatusPublished {
		return ScheduledPublish{}, apperrors.NewValidationFailedError(fmt.Sprintf("article %s is already published", article.ArticleID))
	}
	return ScheduledPublish{
		ScheduleID:  scheduleID,
		ArticleID:   article.ArticleID,
		TenantID:    article.TenantID,
		ScheduledAt: scheduledAt.UTC().Truncate(time.Microsecond),
		ExpiresAt:   expiresAt,
		Status:      SchedulePending,
		CreatedBy:   createdBy,
		CreatedAt:   now.UTC().Truncate(time.Microsecond),
	}, nil
}

// IsDue reports whether a pending schedule should run at now.
func (s ScheduledPublish) IsDue(now time.Time) bool {
	return s.Status == SchedulePending && !s.ScheduledAt.After(now)
}

// Cancel moves a pending schedule to cancelled.
func (s ScheduledPublish) Cancel(now time.Time) (ScheduledPublish, error) {
	if err := s.ensurePending(); err != nil {
		return ScheduledPublish{}, err
	}
	s.Status = ScheduleCancelled
	executed := now.UTC()
	s.ExecutedAt = &executed
	return s, nil
}

// MarkPublished records a successful run.
func (s ScheduledPublish) MarkPublished(now time.Time) (ScheduledPublish, error) {
	if err := s.ensurePending(); err != nil {
		return ScheduledPublish{}, err
	}
	s.Status = SchedulePublished
	executed := now.UTC()
	s.ExecutedAt = &executed
	return s, nil
}

// MarkFailed records a failed run. Failed schedules are not retried.
func (s ScheduledPublish) MarkFailed(cause error, now time.Time) (ScheduledPublish, error) {
	if err := s.ensurePending(); err != nil {
		return ScheduledPublish{}, err
	}
	s.Status = ScheduleFailed
	executed := now.UTC()
	s.ExecutedAt = &executed
	msg := cause.Error()
	s.Error = &msg
	return s, nil
}

func (s ScheduledPublish) ensurePending() error {
	if s.Status != SchedulePending {
		return apperrors.NewInvalidTransitionError(fmt.Sprintf("schedule %s is %s, not pending", s.ScheduleID, s.Status))
	}
	return nil
}
