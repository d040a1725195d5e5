package domain

import (
	"slices"
)

// Permission is a capability token checked before any mutating operation.
type Permission string

const (
	PermArticleCreate  Permission = "article.create"
	PermArticleRead    Permission = "article.read"
	PermArticleUpdate  Permission = "article.update"
	PermArticleDelete  Permission = "article.delete"
	PermArticlePublish Permission = "article.publish"
	PermArticleArchive Permission = "article.archive"

	PermUserCreate Permission = "user.create"
	PermUserRead   Permission = "user.read"
	PermUserUpdate Permission = "user.update"
	PermUserDelete Permission = "user.delete"

	PermTenantCreate Permission = "tenant.create"
	PermTenantRead   Permission = "tenant.read"
	PermTenantUpdate Permission = "tenant.update"
	PermTenantDelete Permission = "tenant.delete"

	PermAnalyticsView   Permission = "analytics.view"
	PermAnalyticsExport Permission = "analytics.export"

	PermSettingsView   Permission = "settings.view"
	PermSettingsUpdate Permission = "settings.update"
)

var allPermissions = []Permission{
	PermArticleCreate, PermArticleRead, PermArticleUpdate, PermArticleDelete, PermArticlePublish, PermArticleArchive,
	PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete,
	PermTenantCreate, PermTenantRead, PermTenantUpdate, PermTenantDelete,
	PermAnalyticsView, PermAnalyticsExport,
	PermSettingsView, PermSettingsUpdate,
}

// AllPermissions returns every known permission token.
func AllPermissions() []Permission {
	return slices.Clone(allPermissions)
}

// IsValid reports whether p is a known token.
func (p Permission) IsValid() bool {
	return slices.Contains(allPermissions, p)
}

// Role names a fixed bundle of permissions inside a tenant.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleEditor      Role = "editor"
	RoleAuthor      Role = "author"
	RoleContributor Role = "contributor"
	RoleViewer      Role = "viewer"
)

var allRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleAuthor, RoleContributor, RoleViewer}

// AllRoles lists roles from most to least privileged.
func AllRoles() []Role {
	return slices.Clone(allRoles)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return slices.Contains(allRoles, r)
}

// OwnsContentOnly reports whether the role may only act on articles it authored.
func (r Role) OwnsContentOnly() bool {
	return r == RoleAuthor || r == RoleContributor
}

// rolePermissions is initialised once and never written afterwards.
var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: allPermissions,
	RoleAdmin: {
		PermArticleCreate, PermArticleRead, PermArticleUpdate, PermArticleDelete, PermArticlePublish, PermArticleArchive,
		PermUserCreate, PermUserRead, PermUserUpdate,
		PermAnalyticsView,
		PermSettingsView, PermSettingsUpdate,
	},
	RoleEditor: {
		PermArticleCreate, PermArticleRead, PermArticleUpdate, PermArticlePublish, PermArticleArchive,
		PermAnalyticsView,
	},
	RoleAuthor:      {PermArticleCreate, PermArticleRead, PermArticleUpdate},
	RoleContributor: {PermArticleCreate, PermArticleRead},
	RoleViewer:      {PermArticleRead, PermAnalyticsView},
}

// PermissionSet is a sorted, duplicate-free list of permissions.
type PermissionSet []Permission

// NewPermissionSet normalises perms into a PermissionSet.
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := slices.Clone(perms)
	slices.Sort(set)
	return slices.Compact(set)
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, found := slices.BinarySearch(s, p)
	return found
}

// Covers reports whether every permission of other is also in s.
func (s PermissionSet) Covers(other PermissionSet) bool {
	for _, p := range other {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// PermissionsForRole returns a fresh copy of the static permission set for
// role, or nil for an unknown role.
func PermissionsForRole(role Role) PermissionSet {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	return NewPermissionSet(perms...)
}
