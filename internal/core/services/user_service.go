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
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithUserAuthority sets the permission authority.
func WithUserAuthority(a portssvc.PermissionAuthoritySvc) UserServiceOption {
	return func(s *userService) {
		s.Authority = a
	}
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// ensureGrantable rejects assigning a role whose permissions the actor does not hold.
func ensureGrantable(actor *domain.User, role domain.Role) error {
	if !role.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q", role))
	}
	if !actor.Permissions.Covers(domain.PermissionsForRole(role)) {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s cannot grant role %s", actor.UserID, role))
	}
	return nil
}

// findMember loads a user and hides users of other tenants.
func (s *userService) findMember(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load user", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, tenantID string, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserCreate)
	if err != nil {
		return nil, err
	}
	if err := ensureGrantable(actor, req.Role); err != nil {
		return nil, err
	}
	user, err := domain.NewUser(uuid.NewString(), tenantID, req.Email, req.Name, req.Role, actor.UserID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("tenant_id", tenantID))
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// GetUser lets every member read its own record.
func (s *userService) GetUser(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error) {
	if userID == actorID {
		return s.ResolveActor(ctx, tenantID, actorID)
	}
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserRead); err != nil {
		return nil, err
	}
	return s.findMember(ctx, tenantID, userID)
}

func (s *userService) ListUsers(ctx context.Context, tenantID string, params dto.ListUsersParams, actorID string) ([]domain.User, error) {
	if _, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserRead); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsersByTenant(ctx, tenantID, pagination.NormalizeLimit(params.Limit), max(params.Offset, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil // Return empty slice, not nil
	}
	return users, nil
}

func (s *userService) ChangeUserRole(ctx context.Context, tenantID, userID string, req dto.ChangeRoleRequest, actorID string) (*domain.User, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserUpdate)
	if err != nil {
		return nil, err
	}
	if userID == actor.UserID {
		return nil, apperrors.NewValidationFailedError("cannot change your own role")
	}
	if err := ensureGrantable(actor, req.Role); err != nil {
		return nil, err
	}
	user, err := s.findMember(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	// Demoting a user holding permissions the actor lacks is escalation too.
	if !actor.Permissions.Covers(user.Permissions) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("user %s cannot manage user %s", actor.UserID, userID))
	}

	updated, err := user.WithRole(req.Role, actor.UserID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update user role", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User role changed",
		slog.String("user_id", userID),
		slog.String("from", string(user.Role)),
		slog.String("to", string(updated.Role)))
	return &updated, nil
}

func (s *userService) SyncUserPermissions(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserUpdate)
	if err != nil {
		return nil, err
	}
	user, err := s.findMember(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	synced := user.SyncPermissions(actor.UserID, s.Now())
	if err := s.userRepo.UpdateUser(ctx, synced); err != nil {
		s.LogError(ctx, err, "Failed to sync user permissions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return &synced, nil
}

func (s *userService) DeactivateUser(ctx context.Context, tenantID, userID, actorID string) error {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermUserDelete)
	if err != nil {
		return err
	}
	if userID == actor.UserID {
		return apperrors.NewValidationFailedError("cannot deactivate yourself")
	}
	user, err := s.findMember(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if !actor.Permissions.Covers(user.Permissions) {
		return apperrors.NewForbiddenError(fmt.Sprintf("user %s cannot manage user %s", actor.UserID, userID))
	}
	if !user.IsActive {
		return nil
	}
	if err := s.userRepo.UpdateUser(ctx, user.Deactivate(actor.UserID, s.Now())); err != nil {
		s.LogError(ctx, err, "Failed to deactivate user", slog.String("user_id", userID))
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User deactivated", slog.String("user_id", userID), slog.String("actor_id", actor.UserID))
	return nil
}
