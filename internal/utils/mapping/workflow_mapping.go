package mapping

import (
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/models"
)

func ToModelWorkflowTransition(d domain.WorkflowTransition) models.WorkflowTransition {
	return models.WorkflowTransition{
		TransitionID: d.TransitionID,
		ArticleID:    d.ArticleID,
		TenantID:     d.TenantID,
		FromStatus:   string(d.FromStatus),
		ToStatus:     string(d.ToStatus),
		UserID:       d.UserID,
		UserName:     d.UserName,
		Comment:      d.Comment,
		OccurredAt:   d.Timestamp,
	}
}

func ToDomainWorkflowTransition(m models.WorkflowTransition) domain.WorkflowTransition {
	return domain.WorkflowTransition{
		TransitionID: m.TransitionID,
		ArticleID:    m.ArticleID,
		TenantID:     m.TenantID,
		FromStatus:   domain.ArticleStatus(m.FromStatus),
		ToStatus:     domain.ArticleStatus(m.ToStatus),
		UserID:       m.UserID,
		UserName:     m.UserName,
		Comment:      m.Comment,
		Timestamp:    m.OccurredAt,
	}
}

func ToDomainWorkflowTransitionSlice(ms []models.WorkflowTransition) []domain.WorkflowTransition {
	ds := make([]domain.WorkflowTransition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkflowTransition(m)
	}
	return ds
}
