package services

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/dto"
)

// TenantReaderSvc defines read operations for tenant data
type TenantReaderSvc interface {
	// GetTenant retrieves the actor's own tenant.
	GetTenant(ctx context.Context, tenantID, actorID string) (*domain.Tenant, error)

	// ListTenants lists every tenant; platform-level, requires tenant.read.
	ListTenants(ctx context.Context, params dto.ListTenantsParams, actorID string) ([]domain.Tenant, error)
}

// TenantWriterSvc defines write operations for tenant data
type TenantWriterSvc interface {
	// CreateTenant creates a tenant; platform-level, requires tenant.create.
	// When req.Admin is set the tenant's first admin is created with it.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actorID string) (*domain.Tenant, error)

	// UpdateTenantSettings replaces the settings of the actor's own tenant.
	UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, actorID string) (*domain.Tenant, error)

	// DeactivateTenant disables a tenant; platform-level, requires tenant.delete.
	DeactivateTenant(ctx context.Context, tenantID, actorID string) error
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
}

// AnalyticsSvc builds dashboard aggregates.
type AnalyticsSvc interface {
	DashboardMetrics(ctx context.Context, tenantID, actorID string) (*domain.DashboardMetrics, error)
}
