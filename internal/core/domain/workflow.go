package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
)

type transitionKey struct {
	from ArticleStatus
	to   ArticleStatus
}

// transitionRules is the complete set of allowed workflow moves and the
// permission each one needs. Initialised once, read-only afterwards.
var transitionRules = map[transitionKey]Permission{
	{StatusDraft, StatusReview}:       PermArticleUpdate,
	{StatusReview, StatusPublished}:   PermArticlePublish,
	{StatusReview, StatusDraft}:       PermArticleUpdate,
	{StatusPublished, StatusArchived}: PermArticleArchive,
	{StatusArchived, StatusPublished}: PermArticlePublish,
}

// RequiredPermission returns the permission for from→to and whether the
// move is allowed at all.
func RequiredPermission(from, to ArticleStatus) (Permission, bool) {
	p, ok := transitionRules[transitionKey{from, to}]
	return p, ok
}

// AllowedTargets lists the states reachable from from in one step.
func AllowedTargets(from ArticleStatus) []ArticleStatus {
	var out []ArticleStatus
	for _, to := range AllStatuses() {
		if _, ok := transitionRules[transitionKey{from, to}]; ok {
			out = append(out, to)
		}
	}
	return out
}

// targetPermission is the permission tied to entering a state. Every row of
// transitionRules agrees with it.
func targetPermission(to ArticleStatus) Permission {
	switch to {
	case StatusPublished:
		return PermArticlePublish
	case StatusArchived:
		return PermArticleArchive
	default:
		return PermArticleUpdate
	}
}

// WorkflowTransition is one row of the append-only status history.
type WorkflowTransition struct {
	TransitionID string        `json:"id"`
	ArticleID    string        `json:"articleId"`
	TenantID     string        `json:"tenantId"`
	FromStatus   ArticleStatus `json:"fromStatus"`
	ToStatus     ArticleStatus `json:"toStatus"`
	UserID       string        `json:"userId"`
	UserName     string        `json:"userName"`
	Comment      *string       `json:"comment,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Transition moves the article to status to on behalf of actor and returns
// the new article value together with the log entry to append.
//
// A move missing from the table fails with an invalid-transition error for
// every actor; if the actor also lacks the permission for the target state
// the error additionally matches the permission error.
func (a Article) Transition(to ArticleStatus, actor User, comment *string, transitionID string, now time.Time) (Article, WorkflowTransition, error) {
	perm, allowed := RequiredPermission(a.Status, to)
	if !allowed {
		perm = targetPermission(to)
	}
	authErr := actor.AuthorizeArticle(a, perm)

	if !allowed {
		invalid := apperrors.NewInvalidTransitionError(fmt.Sprintf("cannot move article from %q to %q", a.Status, to))
		if authErr != nil {
			return Article{}, WorkflowTransition{}, errors.Join(authErr, invalid)
		}
		return Article{}, WorkflowTransition{}, invalid
	}
	if authErr != nil {
		return Article{}, WorkflowTransition{}, authErr
	}

	ts := stamp(a.UpdatedAt, now)
	next := a
	next.ArticleBase = a.ArticleBase.clone()
	next.Status = to
	next.UpdatedAt = ts
	if to == StatusPublished {
		if a.PublishedAt == nil {
			next.PublishedAt = &ts
		}
		next.ScheduledPublishAt = nil
	}

	entry := WorkflowTransition{
		TransitionID: transitionID,
		ArticleID:    a.ArticleID,
		TenantID:     a.TenantID,
		FromStatus:   a.Status,
		ToStatus:     to,
		UserID:       actor.UserID,
		UserName:     actor.Name,
		Comment:      comment,
		Timestamp:    ts,
	}
	return next, entry, nil
}
