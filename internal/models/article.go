package models

import (
	"encoding/json"
	"time"
)

// Article is one row of the articles table. Type-specific fields live in
// Details; ScheduledPublishAt is derived from the pending schedule, if any.
type Article struct {
	ArticleID          string          `db:"article_id"`
	TenantID           string          `db:"tenant_id"`
	AuthorID           string          `db:"author_id"`
	Type               string          `db:"type"`
	Title              string          `db:"title"`
	Slug               string          `db:"slug"`
	Status             string          `db:"status"`
	AccessControl      string          `db:"access_control"`
	Content            string          `db:"content"`
	Excerpt            *string         `db:"excerpt"`
	FeaturedImage      *string         `db:"featured_image"`
	Tags               []string        `db:"tags"`
	Categories         []string        `db:"categories"`
	Metadata           json.RawMessage `db:"metadata"`
	AllowedRoles       []string        `db:"allowed_roles"`
	Details            json.RawMessage `db:"details"`
	ExpiresAt          *time.Time      `db:"expires_at"`
	PublishedAt        *time.Time      `db:"published_at"`
	ScheduledPublishAt *time.Time      `db:"scheduled_publish_at"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
	ViewCount          int64           `db:"view_count"`
}
