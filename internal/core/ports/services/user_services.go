package services

import (
	"context"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
	"github.com/SscSPs/content_platform_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUser retrieves a user of the tenant.
	GetUser(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of the tenant's users.
	ListUsers(ctx context.Context, tenantID string, params dto.ListUsersParams, actorID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser adds a user to the tenant with a permission snapshot of its role.
	CreateUser(ctx context.Context, tenantID string, req dto.CreateUserRequest, actorID string) (*domain.User, error)

	// ChangeUserRole assigns a new role and recomputes the snapshot.
	ChangeUserRole(ctx context.Context, tenantID, userID string, req dto.ChangeRoleRequest, actorID string) (*domain.User, error)

	// SyncUserPermissions re-derives the snapshot from the current role table.
	SyncUserPermissions(ctx context.Context, tenantID, userID, actorID string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeactivateUser blocks the user from every further action.
	DeactivateUser(ctx context.Context, tenantID, userID, actorID string) error
}

// UserSvcFacade combines all user-related service interfaces
// This is a facade for clients that need access to all operations
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
