package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cookshare/backend/internal/api"
	"github.com/cookshare/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	feedHandler *api.FeedHandler,
	recipeHandler *api.RecipeHandler,
	engagementHandler *api.EngagementHandler,
	allowedOrigins []string,
	health gin.HandlerFunc,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", health)

	v1 := router.Group("/api/v1")
	feedHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	engagementHandler.RegisterRoutes(v1)

	return router
}
