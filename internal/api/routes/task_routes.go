package routes

import (
	"timebill-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterTaskRoutes registers all routes related to billable tasks.
func RegisterTaskRoutes(rg *gin.RouterGroup, taskHandler handlers.TaskHandlerInterface, authMiddleware gin.HandlerFunc) {
	tasks := rg.Group("/tasks")
	tasks.Use(authMiddleware)
	{
		tasks.POST("/", taskHandler.CreateTask)
		tasks.GET("/", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
