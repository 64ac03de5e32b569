package v1

import (
	"context"

	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/service"
	"github.com/shared-city/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Shared City API
// @version 1.0
// @description Geographic project platform: phone login, project map, comments and GeoJSON features

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

// HealthChecks are named dependency probes run by the health endpoint.
type HealthChecks map[string]func(ctx context.Context) error

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
	healthChecks HealthChecks
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
	healthChecks HealthChecks,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
		healthChecks: healthChecks,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initUsersRoutes(v1)
	h.initProjectsRoutes(v1)
	h.initCategoriesRoutes(v1)
	h.initChatRoutes(v1)
	h.initHealthRoutes(v1)
}
