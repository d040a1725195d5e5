package models

import "encoding/json"

// Tenant is an isolated content space. Settings are stored as JSONB.
type Tenant struct {
	TenantID string          `db:"tenant_id"`
	Name     string          `db:"name"`
	Slug     string          `db:"slug"`
	Domain   *string         `db:"domain"`
	Logo     *string         `db:"logo"`
	Settings json.RawMessage `db:"settings"`
	IsActive bool            `db:"is_active"`
	AuditFields
}
