package routes

import (
	"net/http"

	"worklink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route on the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "WorkLink API is running"})
	})

	api := ginRouter.Group("/api")
	{
		user := api.Group("/user")
		appHandlers.UserHandler.RegisterRoutes(user)

		worker := api.Group("/worker")
		appHandlers.WorkerProfileHandler.RegisterRoutes(worker)
		appHandlers.WorkerGigHandler.RegisterRoutes(worker)
	}
}
