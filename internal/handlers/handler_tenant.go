package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenants.
type tenantHandler struct {
	tenantService    portssvc.TenantSvcFacade
	analyticsService portssvc.AnalyticsSvc
}

func newTenantHandler(ts portssvc.TenantSvcFacade, as portssvc.AnalyticsSvc) *tenantHandler {
	return &tenantHandler{tenantService: ts, analyticsService: as}
}

// registerPlatformTenantRoutes registers the operations that are not bound
// to the caller's tenant.
func registerPlatformTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService, nil)
	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.DELETE("/:tenant_id", h.deactivateTenant)
	}
}

// RegisterTenantRoutes registers routes on a group scoped to /tenants/:tenant_id.
func RegisterTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, analyticsService portssvc.AnalyticsSvc) {
	h := newTenantHandler(tenantService, analyticsService)
	rg.GET("", h.getTenant)
	rg.PUT("/settings", h.updateTenantSettings)
	rg.GET("/dashboard", h.dashboard)
}

// createTenant godoc
// @Summary Create a tenant
// @Description Platform operation. Optionally creates the tenant's first admin in the same call.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create tenant", slog.String("tenant_name", req.Name))

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Tags tenants
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTenantsResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	var params dto.ListTenantsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	tenants, err := h.tenantService.ListTenants(c.Request.Context(), params, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

// deactivateTenant godoc
// @Summary Deactivate a tenant
// @Tags tenants
// @Param   tenant_id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id} [delete]
func (h *tenantHandler) deactivateTenant(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.tenantService.DeactivateTenant(c.Request.Context(), c.Param("tenant_id"), actorID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getTenant godoc
// @Summary Get the caller's tenant
// @Tags tenants
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	tenant, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("tenant_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenantSettings godoc
// @Summary Replace tenant settings
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   settings body dto.UpdateTenantSettingsRequest true "New settings"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/settings [put]
func (h *tenantHandler) updateTenantSettings(c *gin.Context) {
	var req dto.UpdateTenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	tenant, err := h.tenantService.UpdateTenantSettings(c.Request.Context(), c.Param("tenant_id"), req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// dashboard godoc
// @Summary Dashboard metrics
// @Description Article counts, views and recent workflow activity. Requires the analytics feature.
// @Tags analytics
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} domain.DashboardMetrics
// @Failure 403 {object} ErrorResponse "Forbidden or feature disabled"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/dashboard [get]
func (h *tenantHandler) dashboard(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	metrics, err := h.analyticsService.DashboardMetrics(c.Request.Context(), c.Param("tenant_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
