package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/stretchr/testify/require"
)

const testTenantID = "tenant-1"

var fixtureTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func fixtureTenant(t *testing.T, tenantID string) *domain.Tenant {
	t.Helper()
	tenant, err := domain.NewTenant(tenantID, "Daily Gazette "+tenantID, "", nil, nil, nil, "founder", fixtureTime)
	require.NoError(t, err)
	return &tenant
}

func fixtureUser(t *testing.T, userID, tenantID string, role domain.Role) *domain.User {
	t.Helper()
	user, err := domain.NewUser(userID, tenantID, userID+"@example.com", "User "+userID, role, "founder", fixtureTime)
	require.NoError(t, err)
	return &user
}

func fixtureArticle(t *testing.T, articleID, authorID string, status domain.ArticleStatus) *domain.Article {
	t.Helper()
	base := domain.ArticleBase{Title: "Council Votes " + articleID, AccessControl: domain.AccessPublic, Content: "body"}
	a, err := domain.NewArticle(articleID, testTenantID, authorID, domain.ArticleTypeNews, base, json.RawMessage(`{"source":"Wire"}`), fixtureTime)
	require.NoError(t, err)
	a.Status = status
	if status == domain.StatusPublished || status == domain.StatusArchived {
		published := fixtureTime
		a.PublishedAt = &published
	}
	return &a
}
