package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/models"
)

// ToModelArticle flattens an article into its row form. The variant is
// encoded into Details.
func ToModelArticle(d domain.Article) (models.Article, error) {
	details, err := json.Marshal(d.Variant)
	if err != nil {
		return models.Article{}, fmt.Errorf("encoding details of article %s: %w", d.ArticleID, err)
	}
	metadata := d.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	meta, err := json.Marshal(metadata)
	if err != nil {
		return models.Article{}, fmt.Errorf("encoding metadata of article %s: %w", d.ArticleID, err)
	}
	roles := make([]string, len(d.AllowedRoles))
	for i, r := range d.AllowedRoles {
		roles[i] = string(r)
	}
	return models.Article{
		ArticleID:          d.ArticleID,
		TenantID:           d.TenantID,
		AuthorID:           d.AuthorID,
		Type:               string(d.Type()),
		Title:              d.Title,
		Slug:               d.Slug,
		Status:             string(d.Status),
		AccessControl:      string(d.AccessControl),
		Content:            d.Content,
		Excerpt:            d.Excerpt,
		FeaturedImage:      d.FeaturedImage,
		Tags:               nonNil(d.Tags),
		Categories:         nonNil(d.Categories),
		Metadata:           meta,
		AllowedRoles:       roles,
		Details:            details,
		ExpiresAt:          d.ExpiresAt,
		PublishedAt:        d.PublishedAt,
		ScheduledPublishAt: d.ScheduledPublishAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
		ViewCount:          d.ViewCount,
	}, nil
}

func ToDomainArticle(m models.Article) (domain.Article, error) {
	variant, err := domain.RestoreVariant(domain.ArticleType(m.Type), m.Details)
	if err != nil {
		return domain.Article{}, fmt.Errorf("decoding details of article %s: %w", m.ArticleID, err)
	}
	metadata := map[string]any{}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return domain.Article{}, fmt.Errorf("decoding metadata of article %s: %w", m.ArticleID, err)
		}
	}
	var roles []domain.Role
	for _, r := range m.AllowedRoles {
		roles = append(roles, domain.Role(r))
	}
	return domain.Article{
		ArticleID: m.ArticleID,
		TenantID:  m.TenantID,
		AuthorID:  m.AuthorID,
		ArticleBase: domain.ArticleBase{
			Title:         m.Title,
			Slug:          m.Slug,
			AccessControl: domain.AccessControl(m.AccessControl),
			Content:       m.Content,
			Excerpt:       m.Excerpt,
			FeaturedImage: m.FeaturedImage,
			Tags:          nonNil(m.Tags),
			Categories:    nonNil(m.Categories),
			Metadata:      metadata,
			ExpiresAt:     m.ExpiresAt,
			AllowedRoles:  roles,
		},
		Status:             domain.ArticleStatus(m.Status),
		PublishedAt:        m.PublishedAt,
		ScheduledPublishAt: m.ScheduledPublishAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		ViewCount:          m.ViewCount,
		Variant:            variant,
	}, nil
}

func ToDomainArticleSlice(ms []models.Article) ([]domain.Article, error) {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		d, err := ToDomainArticle(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
