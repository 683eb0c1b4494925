package router

import (
	"github.com/gin-gonic/gin"

	"github.com/culina/backend/internal/api"
	"github.com/culina/backend/internal/middleware"
)

// SetupRouter configures the application routes. Every data route sits behind
// the auth middleware: owner identity always comes from the validated token,
// never from the request body.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	preferencesHandler *api.PreferencesHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		recipeHandler.RegisterRoutes(protected)
		preferencesHandler.RegisterRoutes(protected)
	}

	return router
}
