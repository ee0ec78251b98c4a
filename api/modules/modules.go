package modules

import (
	"net/http"
	"riftrewind/api/handlers"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/config"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	PlayerHandler   *handlers.PlayerHandler
	GemsHandler     *handlers.GemsHandler
	InsightsHandler *handlers.InsightsHandler
}

// ModuleDependencies holds the shared infrastructure every handler is
// built from. DB, Redis and Bedrock may be nil, the services degrade
// accordingly.
type ModuleDependencies struct {
	DB      *gorm.DB
	Logger  *logger.Logger
	Redis   *redis.RedisClient
	Bedrock *bedrock.Client
	Tracker *bedrock.UsageTracker
	Clients *services.ClientRegistry
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()
	router.Use(corsMiddleware())

	return &Module{
		Router:          router,
		PlayerHandler:   initializePlayerHandler(deps),
		GemsHandler:     initializeGemsHandler(deps),
		InsightsHandler: initializeInsightsHandler(deps),
	}
}

// corsMiddleware allows the configured frontend origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", config.Server.FrontendURL)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
