package dto

import (
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// --- Tenant DTOs ---

// CreateTenantRequest defines data for creating a new tenant.
type CreateTenantRequest struct {
	Name     string                 `json:"name" binding:"required,max=200"`
	Slug     string                 `json:"slug"`
	Domain   *string                `json:"domain,omitempty" binding:"omitempty,fqdn"`
	Logo     *string                `json:"logo,omitempty" binding:"omitempty,url"`
	Settings *domain.TenantSettings `json:"settings,omitempty"`
	// Admin, when set, becomes the tenant's first ADMIN user.
	Admin    *TenantAdminRequest    `json:"admin,omitempty"`
}

// TenantAdminRequest describes the first administrator of a new tenant.
type TenantAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,max=200"`
}

// UpdateTenantSettingsRequest replaces a tenant's settings.
type UpdateTenantSettingsRequest struct {
	Settings domain.TenantSettings `json:"settings" binding:"required"`
}

// ListTenantsParams defines query parameters for listing tenants.
type ListTenantsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID      string                `json:"tenantID"`
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	Domain        *string               `json:"domain,omitempty"`
	Logo          *string               `json:"logo,omitempty"`
	Settings      domain.TenantSettings `json:"settings"`
	IsActive      bool                  `json:"isActive"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"` // UserID
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"` // UserID
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		Slug:          t.Slug,
		Domain:        t.Domain,
		Logo:          t.Logo,
		Settings:      t.Settings,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListTenantsResponse wraps a list of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToListTenantsResponse converts a slice of domain.Tenant to DTO.
func ToListTenantsResponse(ts []domain.Tenant) ListTenantsResponse {
	list := make([]TenantResponse, len(ts))
	for i := range ts {
		list[i] = ToTenantResponse(&ts[i])
	}
	return ListTenantsResponse{Tenants: list}
}
