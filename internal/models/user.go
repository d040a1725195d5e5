package models

// User is a member of exactly one tenant.
type User struct {
	UserID      string   `db:"user_id"`
	TenantID    string   `db:"tenant_id"`
	Email       string   `db:"email"`
	Name        string   `db:"name"`
	Role        string   `db:"role"`
	Permissions []string `db:"permissions"` // snapshot taken when the role was assigned
	IsActive    bool     `db:"is_active"`
	AuditFields
}
