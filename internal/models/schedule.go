package models

import "time"

type ScheduledPublish struct {
	ScheduleID  string     `db:"schedule_id"`
	ArticleID   string     `db:"article_id"`
	TenantID    string     `db:"tenant_id"`
	ScheduledAt time.Time  `db:"scheduled_at"`
	ExpiresAt   *time.Time `db:"expires_at"`
	Status      string     `db:"status"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	ExecutedAt  *time.Time `db:"executed_at"`
	Error       *string    `db:"error"`
}
