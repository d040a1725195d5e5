package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorWithRole(role domain.Role) domain.User {
	return domain.User{
		UserID:      "user-" + string(role),
		TenantID:    "tenant-1",
		Name:        "Test " + string(role),
		Role:        role,
		Permissions: domain.PermissionsForRole(role),
		IsActive:    true,
	}
}

func articleInStatus(t *testing.T, status domain.ArticleStatus) domain.Article {
	t.Helper()
	a := newVideoArticle(t)
	a.Status = status
	return a
}

func TestTransition_ValidPairsSucceedIffPermissionHeld(t *testing.T) {
	pairs := []struct {
		from, to domain.ArticleStatus
		perm     domain.Permission
	}{
		{domain.StatusDraft, domain.StatusReview, domain.PermArticleUpdate},
		{domain.StatusReview, domain.StatusPublished, domain.PermArticlePublish},
		{domain.StatusReview, domain.StatusDraft, domain.PermArticleUpdate},
		{domain.StatusPublished, domain.StatusArchived, domain.PermArticleArchive},
		{domain.StatusArchived, domain.StatusPublished, domain.PermArticlePublish},
	}

	for _, p := range pairs {
		for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer} {
			t.Run(fmt.Sprintf("%s->%s as %s", p.from, p.to, role), func(t *testing.T) {
				actor := actorWithRole(role)
				a := articleInStatus(t, p.from)

				perm, ok := domain.RequiredPermission(p.from, p.to)
				require.True(t, ok)
				assert.Equal(t, p.perm, perm)

				next, entry, err := a.Transition(p.to, actor, nil, "tr-1", testNow.Add(time.Minute))
				if actor.HasPermission(p.perm) {
					require.NoError(t, err)
					assert.Equal(t, p.to, next.Status)
					assert.Equal(t, p.from, entry.FromStatus)
					assert.Equal(t, p.to, entry.ToStatus)
					assert.Equal(t, actor.UserID, entry.UserID)
					assert.Equal(t, actor.Name, entry.UserName)
					assert.Equal(t, next.UpdatedAt, entry.Timestamp)
					assert.Equal(t, p.from, a.Status, "receiver is not modified")
				} else {
					assert.ErrorIs(t, err, apperrors.ErrForbidden)
					assert.False(t, errors.Is(err, apperrors.ErrInvalidTransition))
				}
			})
		}
	}
}

func TestTransition_InvalidPairsAlwaysRejected(t *testing.T) {
	for _, from := range domain.AllStatuses() {
		for _, to := range domain.AllStatuses() {
			if _, ok := domain.RequiredPermission(from, to); ok {
				continue
			}
			for _, role := range domain.AllRoles() {
				t.Run(fmt.Sprintf("%s->%s as %s", from, to, role), func(t *testing.T) {
					a := articleInStatus(t, from)
					actor := actorWithRole(role)
					actor.UserID = a.AuthorID

					_, _, err := a.Transition(to, actor, nil, "tr-1", testNow)
					assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
				})
			}
		}
	}
}

func TestTransition_DraftToPublishedWithoutPublishPermission(t *testing.T) {
	a := articleInStatus(t, domain.StatusDraft)
	author := actorWithRole(domain.RoleAuthor)
	author.UserID = a.AuthorID

	next, entry, err := a.Transition(domain.StatusPublished, author, nil, "tr-1", testNow)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, domain.Article{}, next)
	assert.Equal(t, domain.WorkflowTransition{}, entry)
	assert.Equal(t, domain.StatusDraft, a.Status)
}

func TestTransition_PublishedAtSetOnlyOnce(t *testing.T) {
	editor := actorWithRole(domain.RoleEditor)
	a := articleInStatus(t, domain.StatusReview)

	published, _, err := a.Transition(domain.StatusPublished, editor, nil, "tr-1", testNow.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublish := *published.PublishedAt

	archived, _, err := published.Transition(domain.StatusArchived, editor, nil, "tr-2", testNow.Add(2*time.Hour))
	require.NoError(t, err)
	republished, _, err := archived.Transition(domain.StatusPublished, editor, nil, "tr-3", testNow.Add(3*time.Hour))
	require.NoError(t, err)

	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublish, *republished.PublishedAt)
	assert.Equal(t, testNow.Add(3*time.Hour), republished.UpdatedAt)
}

func TestTransition_CommentIsRecorded(t *testing.T) {
	editor := actorWithRole(domain.RoleEditor)
	comment := "needs another pass"

	_, entry, err := articleInStatus(t, domain.StatusReview).Transition(domain.StatusDraft, editor, &comment, "tr-9", testNow)

	require.NoError(t, err)
	assert.Equal(t, "tr-9", entry.TransitionID)
	require.NotNil(t, entry.Comment)
	assert.Equal(t, comment, *entry.Comment)
}

func TestTransition_OwnershipAndTenantRules(t *testing.T) {
	a := articleInStatus(t, domain.StatusDraft)

	author := actorWithRole(domain.RoleAuthor)
	_, _, err := a.Transition(domain.StatusReview, author, nil, "tr", testNow)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "authors may only submit their own articles")

	author.UserID = a.AuthorID
	_, _, err = a.Transition(domain.StatusReview, author, nil, "tr", testNow)
	assert.NoError(t, err)

	foreign := actorWithRole(domain.RoleSuperAdmin)
	foreign.TenantID = "tenant-2"
	_, _, err = a.Transition(domain.StatusReview, foreign, nil, "tr", testNow)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	inactive := actorWithRole(domain.RoleEditor)
	inactive.IsActive = false
	_, _, err = a.Transition(domain.StatusReview, inactive, nil, "tr", testNow)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestTransition_SystemActorPublishes(t *testing.T) {
	a := articleInStatus(t, domain.StatusReview)
	past := testNow.Add(-time.Minute)
	a.ScheduledPublishAt = &past

	next, entry, err := a.Transition(domain.StatusPublished, domain.SystemActor(a.TenantID), nil, "tr", testNow)

	require.NoError(t, err)
	assert.Equal(t, domain.SystemActorID, entry.UserID)
	assert.Nil(t, next.ScheduledPublishAt)
}

func TestAllowedTargets(t *testing.T) {
	assert.Equal(t, []domain.ArticleStatus{domain.StatusReview}, domain.AllowedTargets(domain.StatusDraft))
	assert.ElementsMatch(t, []domain.ArticleStatus{domain.StatusDraft, domain.StatusPublished}, domain.AllowedTargets(domain.StatusReview))
	assert.Equal(t, []domain.ArticleStatus{domain.StatusArchived}, domain.AllowedTargets(domain.StatusPublished))
	assert.Equal(t, []domain.ArticleStatus{domain.StatusPublished}, domain.AllowedTargets(domain.StatusArchived))
	assert.Empty(t, domain.AllowedTargets("deleted"))
}
