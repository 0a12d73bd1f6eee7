package handlers

import (
	"sui-balance-api/internal/models"
	"sui-balance-api/internal/services"
	"sui-balance-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router handles HTTP routing setup
type Router struct {
	chainHandler  *ChainHandler
	healthHandler *HealthHandler
}

// NewRouter creates a new Router instance with all handlers
func NewRouter(querier services.ChainQuerier, healthHandler *HealthHandler) *Router {
	return &Router{
		chainHandler:  NewChainHandler(querier),
		healthHandler: healthHandler,
	}
}

// SetupRoutes configures all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	{
		api.GET("/v1", r.healthHandler.GetReady)
		api.GET("/ping", r.healthHandler.GetPing)
		api.GET("/balance/:address", r.chainHandler.GetBalance)
		api.GET("/coin/:coinType", r.chainHandler.GetCoin)
	}

	engine.NoRoute(func(c *gin.Context) {
		log := logger.GetLogger().WithContext(c.Request.Context())
		models.HandleError(c, models.NewAppError(models.ErrorCodeNotFound, "Not found"), log.Logger)
	})
}

// SetupHealthRoutes configures health check routes
func (r *Router) SetupHealthRoutes(engine *gin.Engine) {
	health := engine.Group("/health")
	{
		health.GET("/live", r.healthHandler.GetLiveness)   // Liveness probe
		health.GET("/ready", r.healthHandler.GetReadiness) // Readiness probe
	}
}
