package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// TransitionCommit is everything a status change writes in one transaction.
type TransitionCommit struct {
	Article           domain.Article
	ExpectedUpdatedAt time.Time
	Entry             domain.WorkflowTransition
	// Schedule, when set, is the scheduled publish that triggered the change.
	Schedule *domain.ScheduledPublish
}

// WorkflowReader defines read operations for the transition log
type WorkflowReader interface {
	// ListTransitionsByArticle returns an article's history, oldest first.
	ListTransitionsByArticle(ctx context.Context, tenantID, articleID string) ([]domain.WorkflowTransition, error)

	// ListRecentTransitions returns the latest transitions in a tenant, newest first.
	ListRecentTransitions(ctx context.Context, tenantID string, limit int) ([]domain.WorkflowTransition, error)
}

// WorkflowWriter defines write operations for the transition log
type WorkflowWriter interface {
	// ApplyTransition updates the article, appends the log entry and, when
	// present, finalises the schedule, all or nothing. Returns
	// apperrors.ErrConflict when the article changed since it was read.
	ApplyTransition(ctx context.Context, commit TransitionCommit) error
}

// WorkflowRepositoryFacade combines all workflow-related repository interfaces
type WorkflowRepositoryFacade interface {
	WorkflowReader
	WorkflowWriter
}
