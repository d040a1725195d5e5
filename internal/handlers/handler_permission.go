package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/SscSPs/content_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type permissionHandler struct {
	authority portssvc.PermissionAuthoritySvc
}

// RegisterPermissionRoutes registers the access-check routes on a group
// scoped to /tenants/:tenant_id.
func RegisterPermissionRoutes(rg *gin.RouterGroup, authority portssvc.PermissionAuthoritySvc) {
	h := &permissionHandler{authority: authority}
	rg.GET("/permissions/check", h.checkPermission)
	rg.GET("/roles", h.listRoles)
}

// checkPermission godoc
// @Summary Check one of the caller's permissions
// @Description Answers allowed=false rather than 403 when the caller lacks the permission.
// @Tags permissions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   permission query string true "Permission token, e.g. article.publish"
// @Success 200 {object} dto.PermissionCheckResponse
// @Failure 400 {object} ErrorResponse "Unknown permission"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/permissions/check [get]
func (h *permissionHandler) checkPermission(c *gin.Context) {
	perm := domain.Permission(c.Query("permission"))
	if !perm.IsValid() {
		respondWithError(c, apperrors.NewValidationFailedError(fmt.Sprintf("unknown permission %q", perm)))
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	err := h.authority.CheckPermission(c.Request.Context(), c.Param("tenant_id"), actorID, perm)
	if err != nil && !errors.Is(err, apperrors.ErrForbidden) {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PermissionCheckResponse{Permission: perm, Allowed: err == nil})
}

// listRoles godoc
// @Summary Role to permission table
// @Tags permissions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListRolesResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/roles [get]
func (h *permissionHandler) listRoles(c *gin.Context) {
	roles := domain.AllRoles()
	resp := dto.ListRolesResponse{Roles: make([]dto.RolePermissions, 0, len(roles))}
	for _, role := range roles {
		resp.Roles = append(resp.Roles, dto.RolePermissions{
			Role:        role,
			Permissions: []domain.Permission(h.authority.PermissionsForRole(role)),
		})
	}
	c.JSON(http.StatusOK, resp)
}
