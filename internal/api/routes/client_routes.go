package routes

import (
	"timebill-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers all routes related to clients.
// The unbilled-task picker and per-client invoice listing live here too since
// they are addressed by client.
func RegisterClientRoutes(
	rg *gin.RouterGroup,
	clientHandler handlers.ClientHandlerInterface,
	taskHandler handlers.TaskHandlerInterface,
	invoiceHandler handlers.InvoiceHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	clients := rg.Group("/clients")
	clients.Use(authMiddleware)
	{
		clients.POST("/", clientHandler.CreateClient)
		clients.GET("/", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.PATCH("/:id/status", clientHandler.SetClientStatus)
		clients.DELETE("/:id", clientHandler.DeactivateClient) // Deactivates, history stays intact

		clients.GET("/:id/tasks/unbilled", taskHandler.ListUnbilledTasks)
		clients.GET("/:id/invoices", invoiceHandler.ListClientInvoices)
	}
}
