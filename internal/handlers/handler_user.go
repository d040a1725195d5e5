package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type userHandler struct {
	userService portssvc.UserSvcFacade
}

// RegisterUserRoutes registers user administration on a group scoped to
// /tenants/:tenant_id.
func RegisterUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:user_id", h.getUser)
		users.PUT("/:user_id/role", h.changeUserRole)
		users.POST("/:user_id/permissions/sync", h.syncUserPermissions)
		users.DELETE("/:user_id", h.deactivateUser)
	}
}

// createUser godoc
// @Summary Add a user to the tenant
// @Description The user's permissions are snapshotted from the role at creation.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Email already used in the tenant"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users [post]
func (h *userHandler) createUser(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID))
	logger.Info("Received request to create user", slog.String("role", string(req.Role)))

	user, err := h.userService.CreateUser(c.Request.Context(), tenantID, req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user
// @Tags users
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   user_id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	users, err := h.userService.ListUsers(c.Request.Context(), c.Param("tenant_id"), params, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// changeUserRole godoc
// @Summary Change a user's role
// @Description Recomputes the permission snapshot. A caller cannot grant permissions it does not hold.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   user_id path string true "User ID"
// @Param   role body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id}/role [put]
func (h *userHandler) changeUserRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.userService.ChangeUserRole(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// syncUserPermissions godoc
// @Summary Refresh a user's permission snapshot
// @Tags users
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   user_id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id}/permissions/sync [post]
func (h *userHandler) syncUserPermissions(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.userService.SyncUserPermissions(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateUser godoc
// @Summary Deactivate a user
// @Tags users
// @Param   tenant_id path string true "Tenant ID"
// @Param   user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/users/{user_id} [delete]
func (h *userHandler) deactivateUser(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.userService.DeactivateUser(c.Request.Context(), c.Param("tenant_id"), c.Param("user_id"), actorID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
