package routes

import (
	"timebill-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers all routes related to invoices.
func RegisterInvoiceRoutes(
	rg *gin.RouterGroup,
	invoiceHandler handlers.InvoiceHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	invoices := rg.Group("/invoices")
	invoices.Use(authMiddleware)
	{
		invoices.POST("/preview", invoiceHandler.PreviewInvoice) // Calculate without persisting
		invoices.POST("/", invoiceHandler.CreateInvoice)
		invoices.GET("/", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoiceByID)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice) // Voids and releases its tasks
	}
}
