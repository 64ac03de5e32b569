package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/service"
	"github.com/shared-city/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initProjectsRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("", h.getProjects)
		projects.POST("", h.createProject)
		projects.GET("/stats", h.getProjectStats)
		projects.GET("/:id", h.getProjectByID)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)

		projects.GET("/:id/comments", h.getProjectComments)
		projects.POST("/:id/comments", h.createProjectComment)

		projects.GET("/:id/features", h.getProjectFeatures)
		projects.POST("/:id/features", h.saveProjectFeatures)
	}
}

type projectRequest struct {
	Name        string       `json:"name" binding:"required,max=255"`
	Description string       `json:"description" binding:"max=2000"`
	Status      string       `json:"status" binding:"projectstatus"`
	StartDate   *domain.Date `json:"startDate"`
	EndDate     *domain.Date `json:"endDate"`
	Category    string       `json:"category" binding:"projectcategory"`
	CenterLng   *float64     `json:"centerLng" binding:"omitempty,gte=-180,lte=180"`
	CenterLat   *float64     `json:"centerLat" binding:"omitempty,gte=-90,lte=90"`
}

func (r projectRequest) toInput() service.ProjectInput {
	input := service.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CenterLng:   r.CenterLng,
		CenterLat:   r.CenterLat,
	}
	if category, ok := domain.ParseCategory(r.Category); ok {
		input.Category = &category
	}
	return input
}

func parseProjectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, InvalidProjectIDCode)
		return 0, false
	}
	return id, true
}

func (h *Handler) projectErrorResponse(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrProjectNotFound) {
		errorResponseWithStatus(c, http.StatusNotFound, ProjectNotFoundCode)
		return
	}
	logger.Error(msg, zap.Error(err))
	c.AbortWithStatus(http.StatusInternalServerError)
}

// @Summary List projects
// @Tags Projects
// @Description Keyword search wins over category filters. A category that is not one of the known tags
// @Description is ignored, and when combined with status the full list is returned.
// @ModuleID getProjects
// @Produce  json
// @Param keyword query string false "substring of name or description"
// @Param category query string false "category tag, case insensitive"
// @Param status query string false "project status"
// @Success 200 {array} domain.Project
// @Failure 500
// @Router /projects [get]
func (h *Handler) getProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), service.ProjectFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	})
	if err != nil {
		logger.Error("list projects failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// @Summary Get project
// @Tags Projects
// @ModuleID getProjectByID
// @Produce  json
// @Param id path int true "project id"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id} [get]
func (h *Handler) getProjectByID(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	project, err := h.services.Projects.GetByID(c.Request.Context(), id)
	if err != nil {
		h.projectErrorResponse(c, err, "get project failed")
		return
	}

	c.JSON(http.StatusOK, project)
}

// @Summary Create project
// @Tags Projects
// @ModuleID createProject
// @Accept  json
// @Produce  json
// @Param input body projectRequest true "project"
// @Success 201 {object} domain.Project
// @Failure 400 {object} ValidationErrorStruct
// @Router /projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	project, err := h.services.Projects.Create(c.Request.Context(), req.toInput())
	if err != nil {
		logger.Error("create project failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/projects/%d", project.ID))
	c.JSON(http.StatusCreated, project)
}

// @Summary Update project
// @Tags Projects
// @ModuleID updateProject
// @Accept  json
// @Produce  json
// @Param id path int true "project id"
// @Param input body projectRequest true "project"
// @Success 200 {object} domain.Project
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id} [put]
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	project, err := h.services.Projects.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.projectErrorResponse(c, err, "update project failed")
		return
	}

	c.JSON(http.StatusOK, project)
}

// @Summary Delete project
// @Tags Projects
// @ModuleID deleteProject
// @Param id path int true "project id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id} [delete]
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	if err := h.services.Projects.Delete(c.Request.Context(), id); err != nil {
		h.projectErrorResponse(c, err, "delete project failed")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Project statistics
// @Tags Projects
// @ModuleID getProjectStats
// @Produce  json
// @Success 200 {object} domain.ProjectStats
// @Router /projects/stats [get]
func (h *Handler) getProjectStats(c *gin.Context) {
	stats, err := h.services.Projects.Stats(c.Request.Context())
	if err != nil {
		logger.Error("get project stats failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, stats)
}
