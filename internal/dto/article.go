package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// --- Article DTOs ---

// CreateArticleRequest defines data for creating a new article. Details
// holds the fields specific to Type.
type CreateArticleRequest struct {
	Type          domain.ArticleType   `json:"type" binding:"required"`
	Title         string               `json:"title" binding:"required,max=300"`
	Slug          string               `json:"slug"`
	AccessControl domain.AccessControl `json:"accessControl"`
	Content       string               `json:"content"`
	Excerpt       *string              `json:"excerpt,omitempty"`
	FeaturedImage *string              `json:"featuredImage,omitempty"`
	Tags          []string             `json:"tags"`
	Categories    []string             `json:"categories"`
	Metadata      map[string]any       `json:"metadata"`
	ExpiresAt     *time.Time           `json:"expiresAt,omitempty"`
	AllowedRoles  []domain.Role        `json:"allowedRoles,omitempty"`
	Details       json.RawMessage      `json:"details" swaggertype:"object"`
}

// ToArticleBase maps the request onto the shared article fields. Access
// defaults to public.
func (r CreateArticleRequest) ToArticleBase() domain.ArticleBase {
	access := r.AccessControl
	if access == "" {
		access = domain.AccessPublic
	}
	return domain.ArticleBase{
		Title:         r.Title,
		Slug:          r.Slug,
		AccessControl: access,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		Tags:          r.Tags,
		Categories:    r.Categories,
		Metadata:      r.Metadata,
		ExpiresAt:     r.ExpiresAt,
		AllowedRoles:  r.AllowedRoles,
	}
}

// UpdateArticleRequest defines a partial update. ExpectedUpdatedAt must be
// the updatedAt the caller last read.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateArticleRequest struct {
	ExpectedUpdatedAt time.Time             `json:"expectedUpdatedAt" binding:"required"`
	Type              *domain.ArticleType   `json:"type,omitempty"`
	Title             *string               `json:"title,omitempty"`
	Slug              *string               `json:"slug,omitempty"`
	AccessControl     *domain.AccessControl `json:"accessControl,omitempty"`
	Content           *string               `json:"content,omitempty"`
	Excerpt           *string               `json:"excerpt,omitempty"`
	FeaturedImage     *string               `json:"featuredImage,omitempty"`
	Tags              []string              `json:"tags,omitempty"`
	Categories        []string              `json:"categories,omitempty"`
	Metadata          map[string]any        `json:"metadata,omitempty"`
	ExpiresAt         *time.Time            `json:"expiresAt,omitempty"`
	ClearExpiresAt    bool                  `json:"clearExpiresAt,omitempty"`
	AllowedRoles      []domain.Role         `json:"allowedRoles,omitempty"`
	Details           json.RawMessage       `json:"details,omitempty" swaggertype:"object"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateArticleRequest) ToPatch() domain.ArticlePatch {
	return domain.ArticlePatch{
		Type:           r.Type,
		Title:          r.Title,
		Slug:           r.Slug,
		AccessControl:  r.AccessControl,
		Content:        r.Content,
		Excerpt:        r.Excerpt,
		FeaturedImage:  r.FeaturedImage,
		Tags:           r.Tags,
		Categories:     r.Categories,
		Metadata:       r.Metadata,
		ExpiresAt:      r.ExpiresAt,
		ClearExpiresAt: r.ClearExpiresAt,
		AllowedRoles:   r.AllowedRoles,
		Details:        r.Details,
	}
}

// ListArticlesParams defines query parameters for listing articles.
type ListArticlesParams struct {
	Limit     int                   `form:"limit,default=20"`
	NextToken *string               `form:"nextToken"`
	Status    *domain.ArticleStatus `form:"status"`
	Type      *domain.ArticleType   `form:"type"`
	AuthorID  *string               `form:"authorId"`
}

// ArticleResponse defines data returned for an article.
type ArticleResponse struct {
	ArticleID          string               `json:"id"`
	TenantID           string               `json:"tenantId"`
	AuthorID           string               `json:"authorId"`
	Type               domain.ArticleType   `json:"type"`
	Title              string               `json:"title"`
	Slug               string               `json:"slug"`
	Status             domain.ArticleStatus `json:"status"`
	AccessControl      domain.AccessControl `json:"accessControl"`
	Content            string               `json:"content"`
	Excerpt            *string              `json:"excerpt,omitempty"`
	FeaturedImage      *string              `json:"featuredImage,omitempty"`
	Tags               []string             `json:"tags"`
	Categories         []string             `json:"categories"`
	Metadata           map[string]any       `json:"metadata"`
	AllowedRoles       []domain.Role        `json:"allowedRoles,omitempty"`
	PublishedAt        *time.Time           `json:"publishedAt,omitempty"`
	ScheduledPublishAt *time.Time           `json:"scheduledPublishAt,omitempty"`
	ExpiresAt          *time.Time           `json:"expiresAt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
	ViewCount          int64                `json:"viewCount"`
	Details            any                  `json:"details" swaggertype:"object"`
}

// ToArticleResponse converts domain.Article to DTO.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:          a.ArticleID,
		TenantID:           a.TenantID,
		AuthorID:           a.AuthorID,
		Type:               a.Type(),
		Title:              a.Title,
		Slug:               a.Slug,
		Status:             a.Status,
		AccessControl:      a.AccessControl,
		Content:            a.Content,
		Excerpt:            a.Excerpt,
		FeaturedImage:      a.FeaturedImage,
		Tags:               a.Tags,
		Categories:         a.Categories,
		Metadata:           a.Metadata,
		AllowedRoles:       a.AllowedRoles,
		PublishedAt:        a.PublishedAt,
		ScheduledPublishAt: a.ScheduledPublishAt,
		ExpiresAt:          a.ExpiresAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
		ViewCount:          a.ViewCount,
		Details:            a.Variant,
	}
}

// ListArticlesResponse wraps a page of articles.
type ListArticlesResponse struct {
	Articles  []ArticleResponse `json:"articles"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListArticlesResponse converts a domain.ArticlePage to DTO.
func ToListArticlesResponse(page domain.ArticlePage) ListArticlesResponse {
	list := make([]ArticleResponse, len(page.Articles))
	for i := range page.Articles {
		list[i] = ToArticleResponse(&page.Articles[i])
	}
	return ListArticlesResponse{Articles: list, NextToken: page.NextToken}
}

// ArticleTypeInfo describes one article type for clients building forms.
type ArticleTypeInfo struct {
	Type    domain.ArticleType `json:"type"`
	Allowed bool               `json:"allowed"`
}
