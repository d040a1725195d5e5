package domain

import "slices"

// CanView reports whether viewer may read the article. A nil viewer is an
// anonymous reader. Articles that are not published are visible only to
// their author and to tenant members allowed to edit them.
func (a Article) CanView(viewer *User, tenant Tenant) bool {
	if a.TenantID != tenant.TenantID || !tenant.IsActive {
		return false
	}
	member := viewer != nil && viewer.IsActive && viewer.TenantID == a.TenantID
	if a.Status != StatusPublished {
		return member && (viewer.UserID == a.AuthorID || viewer.AuthorizeArticle(a, PermArticleUpdate) == nil)
	}
	switch a.AccessControl {
	case AccessPublic:
		return true
	case AccessLoginRequired:
		return member
	case AccessRoleBased:
		return member && (viewer.Role == RoleSuperAdmin || slices.Contains(a.AllowedRoles, viewer.Role))
	case AccessPremium:
		return member && tenant.Settings.Features.PremiumContent && viewer.HasPermission(PermArticleRead)
	default:
		return false
	}
}
