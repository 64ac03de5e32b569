package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shared-city/backend/docs"
	"github.com/shared-city/backend/pkg/auth"
	"github.com/shared-city/backend/pkg/limiter"
	"github.com/shared-city/backend/pkg/logger"
	"github.com/shared-city/backend/pkg/validator"

	internalV1 "github.com/shared-city/backend/internal/api/http/internal/v1"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthChecks are named dependency probes served by GET /api/v1/health.
type HealthChecks = internalV1.HealthChecks

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
	healthChecks HealthChecks
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	cfg *config.Config,
	healthChecks HealthChecks,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       cfg,
		healthChecks: healthChecks,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()
	validator.RegisterGinEnum("projectcategory", categoryValues()...)

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.CORS.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.tokenManager, h.config, h.healthChecks)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}

func categoryValues() []string {
	categories := domain.Categories()
	values := make([]string, 0, len(categories))
	for _, c := range categories {
		values = append(values, string(c.Value))
	}
	return values
}
