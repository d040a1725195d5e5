package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/models"
)

func ToModelTenant(d domain.Tenant) (models.Tenant, error) {
	settings, err := json.Marshal(d.Settings)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("encoding settings of tenant %s: %w", d.TenantID, err)
	}
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		Slug:        d.Slug,
		Domain:      d.Domain,
		Logo:        d.Logo,
		Settings:    settings,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainTenant(m models.Tenant) (domain.Tenant, error) {
	settings := domain.DefaultTenantSettings()
	if len(m.Settings) > 0 {
		if err := json.Unmarshal(m.Settings, &settings); err != nil {
			return domain.Tenant{}, fmt.Errorf("decoding settings of tenant %s: %w", m.TenantID, err)
		}
	}
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		Slug:        m.Slug,
		Domain:      m.Domain,
		Logo:        m.Logo,
		Settings:    settings,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

func ToDomainTenantSlice(ms []models.Tenant) ([]domain.Tenant, error) {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		d, err := ToDomainTenant(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
