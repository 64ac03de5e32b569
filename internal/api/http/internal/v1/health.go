package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/shared-city/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

func (h *Handler) initHealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.health)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// @Summary Health
// @Tags Health
// @ModuleID health
// @Produce  json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.healthChecks))}
	status := http.StatusOK

	for name, check := range h.healthChecks {
		if err := check(ctx); err != nil {
			logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			response.Checks[name] = "down"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "up"
	}

	c.JSON(status, response)
}
