package v1

import (
	"fmt"
	"net/http"

	"github.com/shared-city/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Content    string `json:"content" binding:"required,max=2000"`
	AuthorName string `json:"authorName" binding:"required,max=64"`
}

// @Summary List project comments
// @Tags Comments
// @Description Newest first
// @ModuleID getProjectComments
// @Produce  json
// @Param id path int true "project id"
// @Success 200 {array} domain.Comment
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id}/comments [get]
func (h *Handler) getProjectComments(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	comments, err := h.services.Comments.ListByProject(c.Request.Context(), id)
	if err != nil {
		h.projectErrorResponse(c, err, "list comments failed")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// @Summary Comment on a project
// @Tags Comments
// @ModuleID createProjectComment
// @Accept  json
// @Produce  json
// @Param id path int true "project id"
// @Param input body commentRequest true "comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id}/comments [post]
func (h *Handler) createProjectComment(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	comment, err := h.services.Comments.Create(c.Request.Context(), id, service.CommentInput{
		Content:    req.Content,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		h.projectErrorResponse(c, err, "create comment failed")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/projects/%d/comments/%s", id, comment.ID))
	c.JSON(http.StatusCreated, comment)
}
