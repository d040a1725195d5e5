package models

import "time"

// WorkflowTransition is an append-only log row.
type WorkflowTransition struct {
	TransitionID string    `db:"transition_id"`
	ArticleID    string    `db:"article_id"`
	TenantID     string    `db:"tenant_id"`
	FromStatus   string    `db:"from_status"`
	ToStatus     string    `db:"to_status"`
	UserID       string    `db:"user_id"`
	UserName     string    `db:"user_name"`
	Comment      *string   `db:"comment"`
	OccurredAt   time.Time `db:"occurred_at"`
}
