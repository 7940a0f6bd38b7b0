package routes

import (
	"timebill-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers all routes related to the service catalog.
func RegisterServiceRoutes(rg *gin.RouterGroup, catalogHandler handlers.CatalogHandlerInterface, authMiddleware gin.HandlerFunc) {
	svcs := rg.Group("/services")
	svcs.Use(authMiddleware)
	{
		svcs.GET("/", catalogHandler.ListServices)
		svcs.GET("/:id", catalogHandler.GetServiceByID)
		svcs.POST("/", catalogHandler.CreateService)
		svcs.PUT("/:id", catalogHandler.UpdateService)
		svcs.DELETE("/:id", catalogHandler.DeleteService)
	}
}
