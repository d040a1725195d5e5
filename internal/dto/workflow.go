package dto

import (
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// --- Workflow DTOs ---

// TransitionRequest asks to move an article to another status.
type TransitionRequest struct {
	ToStatus          domain.ArticleStatus `json:"toStatus" binding:"required"`
	Comment           *string              `json:"comment,omitempty" binding:"omitempty,max=2000"`
	ExpectedUpdatedAt *time.Time           `json:"expectedUpdatedAt,omitempty"`
}

// TransitionResponse returns the updated article and the log entry written.
type TransitionResponse struct {
	Article    ArticleResponse    `json:"article"`
	Transition TransitionLogEntry `json:"transition"`
}

// TransitionLogEntry defines data returned for one workflow transition.
type TransitionLogEntry struct {
	TransitionID string               `json:"id"`
	ArticleID    string               `json:"articleId"`
	FromStatus   domain.ArticleStatus `json:"fromStatus"`
	ToStatus     domain.ArticleStatus `json:"toStatus"`
	UserID       string               `json:"userId"`
	UserName     string               `json:"userName"`
	Comment      *string              `json:"comment,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
}

// ToTransitionLogEntry converts domain.WorkflowTransition to DTO.
func ToTransitionLogEntry(t domain.WorkflowTransition) TransitionLogEntry {
	return TransitionLogEntry{
		TransitionID: t.TransitionID,
		ArticleID:    t.ArticleID,
		FromStatus:   t.FromStatus,
		ToStatus:     t.ToStatus,
		UserID:       t.UserID,
		UserName:     t.UserName,
		Comment:      t.Comment,
		Timestamp:    t.Timestamp,
	}
}

// ListTransitionsResponse wraps an article's workflow history.
type ListTransitionsResponse struct {
	Transitions []TransitionLogEntry `json:"transitions"`
}

// ToListTransitionsResponse converts a slice of domain.WorkflowTransition to DTO.
func ToListTransitionsResponse(ts []domain.WorkflowTransition) ListTransitionsResponse {
	list := make([]TransitionLogEntry, len(ts))
	for i, t := range ts {
		list[i] = ToTransitionLogEntry(t)
	}
	return ListTransitionsResponse{Transitions: list}
}

// --- Schedule DTOs ---

// SchedulePublishRequest asks the scheduler to publish an article later.
type SchedulePublishRequest struct {
	ScheduledAt time.Time  `json:"scheduledAt" binding:"required"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// ListSchedulesParams defines query parameters for listing schedules.
type ListSchedulesParams struct {
	Limit  int                    `form:"limit,default=20"`
	Offset int                    `form:"offset,default=0"`
	Status *domain.ScheduleStatus `form:"status"`
}

// ScheduleResponse defines data returned for a scheduled publish.
type ScheduleResponse struct {
	ScheduleID  string                `json:"id"`
	ArticleID   string                `json:"articleId"`
	TenantID    string                `json:"tenantId"`
	ScheduledAt time.Time             `json:"scheduledAt"`
	ExpiresAt   *time.Time            `json:"expiresAt,omitempty"`
	Status      domain.ScheduleStatus `json:"status"`
	CreatedBy   string                `json:"createdBy"`
	CreatedAt   time.Time             `json:"createdAt"`
	ExecutedAt  *time.Time            `json:"executedAt,omitempty"`
	Error       *string               `json:"error,omitempty"`
}

// ToScheduleResponse converts domain.ScheduledPublish to DTO.
func ToScheduleResponse(s *domain.ScheduledPublish) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:  s.ScheduleID,
		ArticleID:   s.ArticleID,
		TenantID:    s.TenantID,
		ScheduledAt: s.ScheduledAt,
		ExpiresAt:   s.ExpiresAt,
		Status:      s.Status,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		ExecutedAt:  s.ExecutedAt,
		Error:       s.Error,
	}
}

// ListSchedulesResponse wraps a list of schedules.
type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// ToListSchedulesResponse converts a slice of domain.ScheduledPublish to DTO.
func ToListSchedulesResponse(ss []domain.ScheduledPublish) ListSchedulesResponse {
	list := make([]ScheduleResponse, len(ss))
	for i := range ss {
		list[i] = ToScheduleResponse(&ss[i])
	}
	return ListSchedulesResponse{Schedules: list}
}

// ScheduleRunReport summarises one scheduler pass.
type ScheduleRunReport struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
	Archived  int `json:"archived"`
}
