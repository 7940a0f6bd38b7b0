package routes

import (
	"timebill-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers all routes related to revenue reports.
func RegisterReportRoutes(rg *gin.RouterGroup, reportHandler handlers.ReportHandlerInterface, authMiddleware gin.HandlerFunc) {
	reports := rg.Group("/reports")
	reports.Use(authMiddleware)
	{
		reports.GET("/revenue", reportHandler.MonthlyRevenue)
	}
}
