package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
	"github.com/SscSPs/content_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{articleService: as}
}

// RegisterArticleRoutes registers article routes on a group already scoped
// to /tenants/:tenant_id.
func RegisterArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	rg.GET("/article-types", h.listArticleTypes)

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.GET("/:article_id", h.getArticle)
		articles.PATCH("/:article_id", h.updateArticle)
		articles.DELETE("/:article_id", h.deleteArticle)
		articles.POST("/:article_id/views", h.recordView)
	}
}

// RegisterPublicArticleRoutes registers read-only routes that accept
// anonymous callers. Authentication is optional on this group.
func RegisterPublicArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)
	rg.GET("/articles/:article_id", h.getArticle)
}

// createArticle godoc
// @Summary Create an article
// @Description Creates a draft article of the given type. The type-specific fields go in details.
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article body dto.CreateArticleRequest true "Article"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID))
	logger.Info("Received request to create article", slog.String("type", string(req.Type)))

	article, err := h.articleService.CreateArticle(c.Request.Context(), tenantID, req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Article created successfully", slog.String("article_id", article.ArticleID))
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// getArticle godoc
// @Summary Get an article
// @Description Returns the article if the caller may view it. Anonymous callers only see published public articles.
// @Tags articles
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id} [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	articleID := c.Param("article_id")
	actorID, _ := middleware.GetUserIDFromContext(c)

	article, err := h.articleService.GetArticle(c.Request.Context(), tenantID, articleID, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List articles
// @Description Keyset-paginated list of the tenant's articles, newest first, filtered to what the caller may view.
// @Tags articles
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status"
// @Param   type query string false "Filter by article type"
// @Param   authorId query string false "Filter by author"
// @Success 200 {object} dto.ListArticlesResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	var params dto.ListArticlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	page, err := h.articleService.ListArticles(c.Request.Context(), tenantID, params, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListArticlesResponse(page))
}

// listArticleTypes godoc
// @Summary List article types
// @Description Every article type with a flag telling whether the tenant accepts new articles of it.
// @Tags articles
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.ArticleTypeInfo
// @Security BearerAuth
// @Router /tenants/{tenant_id}/article-types [get]
func (h *articleHandler) listArticleTypes(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	types, err := h.articleService.ListArticleTypes(c.Request.Context(), c.Param("tenant_id"), actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// updateArticle godoc
// @Summary Update an article
// @Description Partial update. expectedUpdatedAt must equal the article's current updatedAt or the call fails with 409.
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Param   patch body dto.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Stale write"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id} [patch]
func (h *articleHandler) updateArticle(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	articleID := c.Param("article_id")
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actorID, ok := requireActor(c)
	if !ok {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), tenantID, articleID, req, actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Article updated", slog.String("article_id", articleID))
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete a draft
// @Description Only drafts that were never viewed can be deleted.
// @Tags articles
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Article is not deletable"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("tenant_id"), c.Param("article_id"), actorID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// recordView godoc
// @Summary Record a view
// @Description Counts one read of a published article.
// @Tags articles
// @Param   tenant_id path string true "Tenant ID"
// @Param   article_id path string true "Article ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Article not published"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/articles/{article_id}/views [post]
func (h *articleHandler) recordView(c *gin.Context) {
	actorID, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.articleService.RecordView(c.Request.Context(), c.Param("tenant_id"), c.Param("article_id"), actorID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
