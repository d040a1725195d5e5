package handlers

import (
	"github.com/SscSPs/content_platform_app/cmd/docs"
	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/middleware"
	"github.com/SscSPs/content_platform_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	api := r.Group("/api/v1")

	// Anonymous readers see published public articles only
	public := api.Group("/public/tenants/:tenant_id", middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	RegisterPublicArticleRoutes(public, service.Article)

	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerPlatformTenantRoutes(v1, service.Tenant)

	tenant := v1.Group("/tenants/:tenant_id")
	RegisterTenantRoutes(tenant, service.Tenant, service.Analytics)
	RegisterUserRoutes(tenant, service.User)
	RegisterPermissionRoutes(tenant, service.Authority)
	RegisterArticleRoutes(tenant, service.Article)
	RegisterWorkflowRoutes(tenant, service.Workflow, service.Schedule)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
