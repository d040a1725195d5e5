package repositories

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID regardless of tenant; callers
	// enforce tenant scoping.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsersByTenant retrieves a tenant's users ordered by name.
	ListUsersByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate on an email clash within the tenant.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser stores role, permission and activation changes.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
