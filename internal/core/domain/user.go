package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
)

// SystemActorID identifies actions taken by the scheduler rather than a person.
const SystemActorID = "system"

// User is a member of exactly one tenant. Permissions is a snapshot taken
// from the role table at creation or role change.
type User struct {
	UserID      string        `json:"userID"`
	TenantID    string        `json:"tenantID"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Role        Role          `json:"role"`
	Permissions PermissionSet `json:"permissions"`
	IsActive    bool          `json:"isActive"`
	AuditFields
}

// NewUser validates the inputs and snapshots the role's permissions.
func NewUser(userID, tenantID, email, name string, role Role, createdBy string, now time.Time) (User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if tenantID == "" {
		return User{}, apperrors.NewValidationFailedError("tenant id is required")
	}
	if name == "" {
		return User{}, apperrors.NewValidationFailedError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, apperrors.NewValidationFailedError(fmt.Sprintf("invalid email %q", email))
	}
	if !role.IsValid() {
		return User{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q", role))
	}
	return User{
		UserID:      userID,
		TenantID:    tenantID,
		Email:       strings.ToLower(email),
		Name:        name,
		Role:        role,
		Permissions: PermissionsForRole(role),
		IsActive:    true,
		AuditFields: NewAuditFields(createdBy, now),
	}, nil
}

// SystemActor is the identity the scheduler uses inside tenantID.
func SystemActor(tenantID string) User {
	return User{
		UserID:      SystemActorID,
		TenantID:    tenantID,
		Name:        "System Scheduler",
		Role:        RoleSuperAdmin,
		Permissions: PermissionsForRole(RoleSuperAdmin),
		IsActive:    true,
	}
}

// HasPermission is a pure lookup against the snapshotted set.
func (u User) HasPermission(p Permission) bool {
	return u.Permissions.Has(p)
}

// WithRole returns a copy with the new role and its freshly resolved permissions.
func (u User) WithRole(role Role, actorID string, now time.Time) (User, error) {
	if !role.IsValid() {
		return User{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q", role))
	}
	u.Role = role
	u.Permissions = PermissionsForRole(role)
	u.Touch(actorID, now)
	return u, nil
}

// SyncPermissions re-derives the snapshot from the current role table.
func (u User) SyncPermissions(actorID string, now time.Time) User {
	u.Permissions = PermissionsForRole(u.Role)
	u.Touch(actorID, now)
	return u
}

// Deactivate returns a copy that fails every subsequent permission check.
func (u User) Deactivate(actorID string, now time.Time) User {
	u.IsActive = false
	u.Touch(actorID, now)
	return u
}

// Authorize fails with a permission error unless u is active, belongs to
// tenantID and holds perm.
func (u User) Authorize(tenantID string, perm Permission) error {
	if u.TenantID != tenantID {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s does not belong to tenant %s", u.UserID, tenantID))
	}
	if !u.IsActive {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s is inactive", u.UserID))
	}
	if !u.HasPermission(perm) {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s lacks %s", u.UserID, perm))
	}
	return nil
}

// AuthorizeArticle adds the ownership rule on top of Authorize: roles that
// own content only may act solely on articles they authored.
func (u User) AuthorizeArticle(article Article, perm Permission) error {
	if err := u.Authorize(article.TenantID, perm); err != nil {
		return err
	}
	if u.Role.OwnsContentOnly() && perm != PermArticleRead && article.AuthorID != u.UserID {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s may only act on own articles", u.UserID))
	}
	return nil
}
