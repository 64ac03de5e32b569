package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCategoriesRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", h.getCategories)
		categories.GET("/names", h.getCategoryNames)
	}
}

// @Summary List categories
// @Tags Categories
// @ModuleID getCategories
// @Produce  json
// @Success 200 {array} domain.CategoryInfo
// @Router /categories [get]
func (h *Handler) getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Categories.GetAll())
}

// @Summary List category labels
// @Tags Categories
// @ModuleID getCategoryNames
// @Produce  json
// @Success 200 {array} string
// @Router /categories/names [get]
func (h *Handler) getCategoryNames(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Categories.Names())
}
