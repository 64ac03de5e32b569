package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/shared-city/backend/internal/service"

	"github.com/gin-gonic/gin"
)

const maxFeatureBodySize = 10 << 20

// @Summary Get project features
// @Tags Features
// @Description Stored GeoJSON FeatureCollection, or an empty collection
// @ModuleID getProjectFeatures
// @Produce  json
// @Param id path int true "project id"
// @Success 200 {object} object
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id}/features [get]
func (h *Handler) getProjectFeatures(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	content, err := h.services.Features.Get(c.Request.Context(), id)
	if err != nil {
		h.projectErrorResponse(c, err, "get features failed")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(content))
}

// @Summary Save project features
// @Tags Features
// @Description Replaces the project's GeoJSON FeatureCollection
// @ModuleID saveProjectFeatures
// @Accept  json
// @Produce  json
// @Param id path int true "project id"
// @Param input body object true "GeoJSON FeatureCollection"
// @Success 200 {object} object
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /projects/{id}/features [post]
func (h *Handler) saveProjectFeatures(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxFeatureBodySize))
	if err != nil {
		errorResponse(c, InvalidRequestBodyCode)
		return
	}

	content, err := h.services.Features.Save(c.Request.Context(), id, string(body))
	if err != nil {
		if errors.Is(err, service.ErrInvalidGeoJSON) {
			errorResponse(c, InvalidGeoJSONCode)
			return
		}
		h.projectErrorResponse(c, err, "save features failed")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(content))
}
