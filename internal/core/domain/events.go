package domain

import "time"

// EventType names an outbound domain event.
type EventType string

const (
	EventArticleTransitioned   EventType = "article.transitioned"
	EventSchedulePublishFailed EventType = "schedule.publish_failed"
)

// Event is anything the platform announces to other systems.
type Event interface {
	EventType() EventType
	// PartitionKey keeps events for one article in order.
	PartitionKey() string
}

// ArticleTransitioned is emitted after a status change commits.
type ArticleTransitioned struct {
	ArticleID string        `json:"articleId"`
	TenantID  string        `json:"tenantId"`
	From      ArticleStatus `json:"from"`
	To        ArticleStatus `json:"to"`
	Actor     string        `json:"actor"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewArticleTransitioned(entry WorkflowTransition) ArticleTransitioned {
	return ArticleTransitioned{
		ArticleID: entry.ArticleID,
		TenantID:  entry.TenantID,
		From:      entry.FromStatus,
		To:        entry.ToStatus,
		Actor:     entry.UserID,
		Timestamp: entry.Timestamp,
	}
}

func (ArticleTransitioned) EventType() EventType { return EventArticleTransitioned }
func (e ArticleTransitioned) PartitionKey() string { return e.ArticleID }

// SchedulePublishFailed is emitted when the scheduler cannot publish.
type SchedulePublishFailed struct {
	ScheduleID string    `json:"scheduleId"`
	ArticleID  string    `json:"articleId"`
	TenantID   string    `json:"tenantId"`
	Error      string    `json:"error"`
	Timestamp  time.Time `json:"timestamp"`
}

func (SchedulePublishFailed) EventType() EventType { return EventSchedulePublishFailed }
func (e SchedulePublishFailed) PartitionKey() string { return e.ArticleID }
