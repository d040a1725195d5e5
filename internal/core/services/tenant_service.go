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

// tenantService administers tenants. Create, list and deactivate are
// platform-level and authorised against the caller's own tenant.
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// TenantServiceOption is a functional option for configuring the tenant service
type TenantServiceOption func(*tenantService)

// WithTenantAuthority sets the permission authority.
func WithTenantAuthority(a portssvc.PermissionAuthoritySvc) TenantServiceOption {
	return func(s *tenantService) {
		s.Authority = a
	}
}

// NewTenantService creates a new TenantService.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, options ...TenantServiceOption) portssvc.TenantSvcFacade {
	svc := &tenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// platformActor authorises a platform-level operation. The caller is
// resolved in its home tenant.
func (s *tenantService) platformActor(ctx context.Context, actorID string, perm domain.Permission) (*domain.User, error) {
	home, err := s.homeTenant(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.AuthorizeUser(ctx, home, actorID, perm)
}

func (s *tenantService) homeTenant(ctx context.Context, actorID string) (string, error) {
	if actorID == "" {
		return "", apperrors.NewUnauthorizedError("missing user identity")
	}
	user, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewForbiddenError(fmt.Sprintf("unknown user %s", actorID))
		}
		return "", fmt.Errorf("failed to load user %s: %w", actorID, err)
	}
	return user.TenantID, nil
}

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actorID string) (*domain.Tenant, error) {
	actor, err := s.platformActor(ctx, actorID, domain.PermTenantCreate)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	tenant, err := domain.NewTenant(uuid.NewString(), req.Name, req.Slug, req.Domain, req.Logo, req.Settings, actor.UserID, now)
	if err != nil {
		return nil, err
	}

	var admin *domain.User
	if req.Admin != nil {
		u, err := domain.NewUser(uuid.NewString(), tenant.TenantID, req.Admin.Email, req.Admin.Name, domain.RoleAdmin, actor.UserID, now)
		if err != nil {
			return nil, err
		}
		admin = &u
	}

	if err := s.tenantRepo.SaveTenantWithAdmin(ctx, tenant, admin); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save tenant", slog.String("slug", tenant.Slug))
		}
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	s.LogInfo(ctx, "Tenant created",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("slug", tenant.Slug),
		slog.Bool("with_admin", admin != nil))
	return &tenant, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID, actorID string) (*domain.Tenant, error) {
	actor, err := s.ResolveActor(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Authorize(tenantID, domain.PermSettingsView) != nil {
		if err := actor.Authorize(tenantID, domain.PermTenantRead); err != nil {
			return nil, err
		}
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

func (s *tenantService) ListTenants(ctx context.Context, params dto.ListTenantsParams, actorID string) ([]domain.Tenant, error) {
	if _, err := s.platformActor(ctx, actorID, domain.PermTenantRead); err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.ListTenants(ctx, pagination.NormalizeLimit(params.Limit), max(params.Offset, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants")
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		return []domain.Tenant{}, nil
	}
	return tenants, nil
}

func (s *tenantService) UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, actorID string) (*domain.Tenant, error) {
	actor, err := s.AuthorizeUser(ctx, tenantID, actorID, domain.PermSettingsUpdate)
	if err != nil {
		return nil, err
	}
	tenant, err := activeTenant(ctx, s.tenantRepo, tenantID)
	if err != nil {
		return nil, err
	}
	updated, err := tenant.WithSettings(req.Settings, actor.UserID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.tenantRepo.UpdateTenant(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update tenant settings", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}
	s.LogInfo(ctx, "Tenant settings updated", slog.String("tenant_id", tenantID), slog.String("actor_id", actor.UserID))
	return &updated, nil
}

func (s *tenantService) DeactivateTenant(ctx context.Context, tenantID, actorID string) error {
	actor, err := s.platformActor(ctx, actorID, domain.PermTenantDelete)
	if err != nil {
		return err
	}
	if actor.TenantID == tenantID {
		return apperrors.NewValidationFailedError("cannot deactivate your own tenant")
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	if !tenant.IsActive {
		return nil
	}
	if err := s.tenantRepo.UpdateTenant(ctx, tenant.Deactivate(actor.UserID, s.Now())); err != nil {
		s.LogError(ctx, err, "Failed to deactivate tenant", slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to deactivate tenant %s: %w", tenantID, err)
	}
	s.LogInfo(ctx, "Tenant deactivated", slog.String("tenant_id", tenantID), slog.String("actor_id", actor.UserID))
	return nil
}
