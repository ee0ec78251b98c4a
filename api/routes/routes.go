package routes

import (
	"net/http"
	"riftrewind/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.GemsHandler:
			r.registerGemsHandler(handler)
		case *handlers.InsightsHandler:
			r.registerInsightsHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	player := r.api.Group("/player")
	{
		player.GET("/:region/:riotId", handler.GetPlayerStats)
	}

	r.api.GET("/regions", handler.GetRegions)
}

// Register the gems handler.
func (r *Router) registerGemsHandler(handler *handlers.GemsHandler) {
	gems := r.api.Group("/gems")
	{
		gems.POST("", handler.DiscoverGems)
	}
}

// Register the insights handler.
func (r *Router) registerInsightsHandler(handler *handlers.InsightsHandler) {
	insights := r.api.Group("/insights")
	{
		insights.POST("/recap", handler.GenerateRecap)
		insights.POST("/roast", handler.GenerateRoast)
		insights.POST("/personality", handler.GeneratePersonality)
		insights.GET("/usage", handler.GetUsageReport)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
