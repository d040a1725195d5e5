package domain

import (
	"github.com/shopspring/decimal"
)

// TopArticlesLimit is how many articles the dashboard ranks by views.
const TopArticlesLimit = 5

// RecentActivityLimit is how many workflow transitions the dashboard shows.
const RecentActivityLimit = 10

// TypeCount is the number of articles of one type in a tenant.
type TypeCount struct {
	Type  ArticleType `json:"type"`
	Count int64       `json:"count"`
}

// TopArticle is a ranked entry of the most-viewed list.
type TopArticle struct {
	ArticleID string      `json:"articleId"`
	Title     string      `json:"title"`
	Type      ArticleType `json:"type"`
	ViewCount int64       `json:"viewCount"`
}

// StatusCounts holds per-status article totals for one tenant.
type StatusCounts map[ArticleStatus]int64

// Total sums every status.
func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// DashboardMetrics is the tenant overview shown on the admin dashboard.
type DashboardMetrics struct {
	TenantID          string               `json:"tenantId"`
	TotalArticles     int64                `json:"totalArticles"`
	PublishedArticles int64                `json:"publishedArticles"`
	DraftArticles     int64                `json:"draftArticles"`
	ReviewArticles    int64                `json:"reviewArticles"`
	ArchivedArticles  int64                `json:"archivedArticles"`
	ScheduledArticles int64                `json:"scheduledArticles"`
	TotalViews        int64                `json:"totalViews"`
	PublishedShare    decimal.Decimal      `json:"publishedShare"` // percentage, two decimals
	ArticlesByType    []TypeCount          `json:"articlesByType"`
	TopArticles       []TopArticle         `json:"topArticles"`
	RecentActivity    []WorkflowTransition `json:"recentActivity"`
}

// NewDashboardMetrics derives the headline numbers from per-status counts.
func NewDashboardMetrics(tenantID string, counts StatusCounts, scheduled, views int64) DashboardMetrics {
	m := DashboardMetrics{
		TenantID:          tenantID,
		TotalArticles:     counts.Total(),
		PublishedArticles: counts[StatusPublished],
		DraftArticles:     counts[StatusDraft],
		ReviewArticles:    counts[StatusReview],
		ArchivedArticles:  counts[StatusArchived],
		ScheduledArticles: scheduled,
		TotalViews:        views,
		PublishedShare:    decimal.Zero,
		ArticlesByType:    []TypeCount{},
		TopArticles:       []TopArticle{},
		RecentActivity:    []WorkflowTransition{},
	}
	if m.TotalArticles > 0 {
		m.PublishedShare = decimal.NewFromInt(m.PublishedArticles).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(m.TotalArticles)).
			Round(2)
	}
	return m
}
