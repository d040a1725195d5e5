package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type workflowHandler struct {
	workflowService portssvc.WorkflowSvc
	scheduleService portssvc.ScheduleSvc
}

// RegisterWorkflowRoutes registers status transitions, the transition log and
// scheduled publishing on a group scoped to /tenants/:tenant_id.
func RegisterWorkflowRoutes(rg *gin.RouterGroup, workflowService portssvc.WorkflowSvc, scheduleService portssvc.ScheduleSvc) {
	h := &workflowHandler{workflowService: workflowService, scheduleService: scheduleService}

	article := rg.Group("/articles/:article_id")
	{
		article.POST("/transitions", h.transitionStatus)
		article.GET("/transitions", h.listTransitions)
		article.POST("/schedule", h.schedulePublish)
	}

	schedules := rg.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		schedules.POST("/:schedule_id/cancel", h.cancelSchedule)
	}
}

// transitionStatus godoc
// @Summary Move an article to another status
// @Description Applies one workflow move. The permission needed depends on the target status.
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Param   transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Stale write"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id}/transitions [post]
func (h *workflowHandler) transitionStatus(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	articleID := c.Param("article_id")
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("tenant_id", tenantID),
		slog.String("article_id", articleID),
	)
	logger.Info("Received transition request", slog.String("to_status", string(req.ToStatus)))

	article, entry, err := h.workflowService.TransitionStatus(c.Request.Context(), tenantID, articleID, req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Article transitioned", slog.String("from_status", string(entry.FromStatus)))
	c.JSON(http.StatusOK, dto.TransitionResponse{
		Article:    dto.ToArticleResponse(article),
		Transition: dto.ToTransitionLogEntry(*entry),
	})
}

// listTransitions godoc
// @Summary Transition history
// @Tags workflow
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Success 200 {object} dto.ListTransitionsResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id}/transitions [get]
func (h *workflowHandler) listTransitions(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	entries, err := h.workflowService.ListTransitions(c.Request.Context(), c.Param("tenant_id"), c.Param("article_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransitionsResponse(entries))
}

// schedulePublish godoc
// @Summary Schedule an article for publishing
// @Description Queues a future publish. An article holds at most one pending schedule.
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Param   schedule body dto.SchedulePublishRequest true "When to publish"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "A pending schedule already exists"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id}/schedule [post]
func (h *workflowHandler) schedulePublish(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	articleID := c.Param("article_id")
	var req dto.SchedulePublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.SchedulePublish(c.Request.Context(), tenantID, articleID, req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Publish scheduled",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.Time("scheduled_at", schedule.ScheduledAt),
	)
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

// cancelSchedule godoc
// @Summary Cancel a pending schedule
// @Tags schedules
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   schedule_id path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 422 {object} ErrorResponse "Schedule is no longer pending"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/schedules/{schedule_id}/cancel [post]
func (h *workflowHandler) cancelSchedule(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	schedule, err := h.scheduleService.CancelSchedule(c.Request.Context(), c.Param("tenant_id"), c.Param("schedule_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

// listSchedules godoc
// @Summary List schedules
// @Tags schedules
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   status query string false "pending, published, failed or cancelled"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListSchedulesResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/schedules [get]
func (h *workflowHandler) listSchedules(c *gin.Context) {
	var params dto.ListSchedulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), c.Param("tenant_id"), params, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSchedulesResponse(schedules))
}
