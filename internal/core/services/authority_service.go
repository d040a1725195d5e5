package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/content_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
)

// authorityService answers permission questions from stored users and the
// static role table.
type authorityService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewAuthorityService creates the permission authority.
func NewAuthorityService(userRepo portsrepo.UserReader) portssvc.PermissionAuthoritySvc {
	return &authorityService{userRepo: userRepo}
}

var _ portssvc.PermissionAuthoritySvc = (*authorityService)(nil)

func (s *authorityService) ResolveActor(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("missing user identity")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Acting user not found", slog.String("user_id", userID))
			return nil, apperrors.NewForbiddenError(fmt.Sprintf("unknown user %s", userID))
		}
		s.LogError(ctx, err, "Failed to load acting user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user.TenantID != tenantID {
		s.LogWarn(ctx, "Cross-tenant access attempt",
			slog.String("user_id", userID),
			slog.String("user_tenant_id", user.TenantID),
			slog.String("tenant_id", tenantID))
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("user %s does not belong to tenant %s", userID, tenantID))
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("user %s is inactive", userID))
	}
	return user, nil
}

func (s *authorityService) CheckPermission(ctx context.Context, tenantID, userID string, perm domain.Permission) error {
	if !perm.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown permission %q", perm))
	}
	user, err := s.ResolveActor(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	return user.Authorize(tenantID, perm)
}

func (s *authorityService) HasPermission(user domain.User, perm domain.Permission) bool {
	return user.IsActive && user.HasPermission(perm)
}

func (s *authorityService) PermissionsForRole(role domain.Role) domain.PermissionSet {
	return domain.PermissionsForRole(role)
}
