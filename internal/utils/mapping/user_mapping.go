package mapping

import (
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	perms := make([]string, len(d.Permissions))
	for i, p := range d.Permissions {
		perms[i] = string(p)
	}
	return models.User{
		UserID:      d.UserID,
		TenantID:    d.TenantID,
		Email:       d.Email,
		Name:        d.Name,
		Role:        string(d.Role),
		Permissions: perms,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User. Stored permissions are
// kept as they are, even if the role table has changed since.
func ToDomainUser(m models.User) domain.User {
	perms := make([]domain.Permission, len(m.Permissions))
	for i, p := range m.Permissions {
		perms[i] = domain.Permission(p)
	}
	return domain.User{
		UserID:      m.UserID,
		TenantID:    m.TenantID,
		Email:       m.Email,
		Name:        m.Name,
		Role:        domain.Role(m.Role),
		Permissions: domain.NewPermissionSet(perms...),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
