package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsForRole(t *testing.T) {
	assert.ElementsMatch(t, domain.AllPermissions(), domain.PermissionsForRole(domain.RoleSuperAdmin))
	assert.ElementsMatch(t,
		[]domain.Permission{domain.PermArticleRead, domain.PermAnalyticsView},
		domain.PermissionsForRole(domain.RoleViewer))
	assert.ElementsMatch(t,
		[]domain.Permission{domain.PermArticleCreate, domain.PermArticleRead},
		domain.PermissionsForRole(domain.RoleContributor))
	assert.Nil(t, domain.PermissionsForRole("owner"))

	admin := domain.PermissionsForRole(domain.RoleAdmin)
	assert.True(t, admin.Has(domain.PermArticleDelete))
	assert.False(t, admin.Has(domain.PermTenantCreate), "admins do not manage tenants")
	assert.False(t, admin.Has(domain.PermUserDelete))

	editor := domain.PermissionsForRole(domain.RoleEditor)
	assert.True(t, editor.Has(domain.PermArticlePublish))
	assert.False(t, editor.Has(domain.PermArticleDelete))
}

func TestPermissionsForRole_ReturnsCopy(t *testing.T) {
	perms := domain.PermissionsForRole(domain.RoleViewer)
	perms[0] = domain.PermTenantDelete

	assert.False(t, domain.PermissionsForRole(domain.RoleViewer).Has(domain.PermTenantDelete))
}

func TestPermissionSet_Covers(t *testing.T) {
	admin := domain.PermissionsForRole(domain.RoleAdmin)

	assert.True(t, admin.Covers(domain.PermissionsForRole(domain.RoleEditor)))
	assert.True(t, admin.Covers(domain.PermissionsForRole(domain.RoleViewer)))
	assert.False(t, admin.Covers(domain.PermissionsForRole(domain.RoleSuperAdmin)))
	assert.True(t, domain.NewPermissionSet().Covers(nil))
}

func TestUser_Authorize(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u, err := domain.NewUser("u-1", "tenant-1", "Editor@Example.com", "Ed", domain.RoleEditor, "admin-1", now)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", u.Email)

	assert.NoError(t, u.Authorize("tenant-1", domain.PermArticlePublish))
	assert.ErrorIs(t, u.Authorize("tenant-1", domain.PermUserCreate), apperrors.ErrForbidden)
	assert.ErrorIs(t, u.Authorize("tenant-2", domain.PermArticleRead), apperrors.ErrForbidden)

	inactive := u.Deactivate("admin-1", now)
	assert.ErrorIs(t, inactive.Authorize("tenant-1", domain.PermArticleRead), apperrors.ErrForbidden)
	assert.True(t, u.IsActive, "receiver is not modified")
}

func TestUser_RoleChangeAndSync(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u, err := domain.NewUser("u-1", "tenant-1", "a@example.com", "A", domain.RoleViewer, "admin-1", now)
	require.NoError(t, err)

	promoted, err := u.WithRole(domain.RoleEditor, "admin-1", now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, promoted.HasPermission(domain.PermArticlePublish))
	assert.Equal(t, now.Add(time.Hour), promoted.LastUpdatedAt)

	_, err = u.WithRole("owner", "admin-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	stale := u
	stale.Permissions = domain.NewPermissionSet(domain.PermArticleRead)
	synced := stale.SyncPermissions("admin-1", now)
	assert.ElementsMatch(t, domain.PermissionsForRole(domain.RoleViewer), synced.Permissions)
}

func TestNewUser_Validation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		email string
		uname string
		role  domain.Role
	}{
		{name: "bad email", email: "not-an-email", uname: "A", role: domain.RoleViewer},
		{name: "missing name", email: "a@example.com", uname: " ", role: domain.RoleViewer},
		{name: "unknown role", email: "a@example.com", uname: "A", role: "owner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewUser("u", "tenant-1", tt.email, tt.uname, tt.role, "x", now)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
