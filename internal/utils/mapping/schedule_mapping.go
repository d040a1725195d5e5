package mapping

import (
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/models"
)

func ToModelScheduledPublish(d domain.ScheduledPublish) models.ScheduledPublish {
	return models.ScheduledPublish{
		ScheduleID:  d.ScheduleID,
		ArticleID:   d.ArticleID,
		TenantID:    d.TenantID,
		ScheduledAt: d.ScheduledAt,
		ExpiresAt:   d.ExpiresAt,
		Status:      string(d.Status),
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		ExecutedAt:  d.ExecutedAt,
		Error:       d.Error,
	}
}

func ToDomainScheduledPublish(m models.ScheduledPublish) domain.ScheduledPublish {
	return domain.ScheduledPublish{
		ScheduleID:  m.ScheduleID,
		ArticleID:   m.ArticleID,
		TenantID:    m.TenantID,
		ScheduledAt: m.ScheduledAt,
		ExpiresAt:   m.ExpiresAt,
		Status:      domain.ScheduleStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		ExecutedAt:  m.ExecutedAt,
		Error:       m.Error,
	}
}

func ToDomainScheduledPublishSlice(ms []models.ScheduledPublish) []domain.ScheduledPublish {
	ds := make([]domain.ScheduledPublish, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheduledPublish(m)
	}
	return ds
}
