package dto

import (
	"time"

	"github.com/SscSPs/content_platform_app/internal/core/domain"
)

// CreateUserRequest defines data for adding a user to a tenant.
type CreateUserRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Name  string      `json:"name" binding:"required,max=200"`
	Role  domain.Role `json:"role" binding:"required"`
}

// ChangeRoleRequest assigns a new role to a user.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID        string              `json:"userID"`
	TenantID      string              `json:"tenantID"`
	Email         string              `json:"email"`
	Name          string              `json:"name"`
	Role          domain.Role         `json:"role"`
	Permissions   []domain.Permission `json:"permissions"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	perms := []domain.Permission(u.Permissions)
	if perms == nil {
		perms = []domain.Permission{}
	}
	return UserResponse{
		UserID:        u.UserID,
		TenantID:      u.TenantID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		Permissions:   perms,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// --- Permission DTOs ---

// PermissionCheckResponse answers whether the caller holds a permission.
type PermissionCheckResponse struct {
	Permission domain.Permission `json:"permission"`
	Allowed    bool              `json:"allowed"`
}

// RolePermissions lists one role's static permission set.
type RolePermissions struct {
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// ListRolesResponse is the full role table.
type ListRolesResponse struct {
	Roles []RolePermissions `json:"roles"`
}
