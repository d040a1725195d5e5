package services

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// PermissionAuthoritySvc answers access questions against the role table.
type PermissionAuthoritySvc interface {
	// ResolveActor loads userID and confirms it is an active member of tenantID.
	ResolveActor(ctx context.Context, tenantID, userID string) (*domain.User, error)

	// CheckPermission returns apperrors.ErrForbidden unless the user is an
	// active member of tenantID holding perm.
	CheckPermission(ctx context.Context, tenantID, userID string, perm domain.Permission) error

	// HasPermission is a pure lookup against the user's snapshotted permissions.
	HasPermission(user domain.User, perm domain.Permission) bool

	// PermissionsForRole returns a copy of the static permission set of role.
	PermissionsForRole(role domain.Role) domain.PermissionSet
}
