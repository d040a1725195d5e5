package repositories

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves tenants ordered by name.
	ListTenants(ctx context.Context, limit, offset int) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant. Returns apperrors.ErrDuplicate on a slug clash.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// SaveTenantWithAdmin persists a new tenant and, when admin is non-nil, its
	// first user in one transaction. Neither row is stored if either insert fails.
	SaveTenantWithAdmin(ctx context.Context, tenant domain.Tenant, admin *domain.User) error

	// UpdateTenant stores settings and activation changes.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
