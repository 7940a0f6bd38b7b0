// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	DeleteMe(c *gin.Context)
}

// ClientHandlerInterface defines the methods needed by the client routes.
type ClientHandlerInterface interface {
	CreateClient(c *gin.Context)
	GetClientByID(c *gin.Context)
	ListClients(c *gin.Context)
	UpdateClient(c *gin.Context)
	SetClientStatus(c *gin.Context)
	DeactivateClient(c *gin.Context)
}

// CatalogHandlerInterface defines the methods needed by the service routes.
type CatalogHandlerInterface interface {
	ListServices(c *gin.Context)
	GetServiceByID(c *gin.Context)
	CreateService(c *gin.Context)
	UpdateService(c *gin.Context)
	DeleteService(c *gin.Context)
}

// TaskHandlerInterface defines the methods needed by the task routes.
type TaskHandlerInterface interface {
	CreateTask(c *gin.Context)
	GetTaskByID(c *gin.Context)
	ListTasks(c *gin.Context)
	ListUnbilledTasks(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
}

// InvoiceHandlerInterface defines the methods needed by the invoice routes.
type InvoiceHandlerInterface interface {
	PreviewInvoice(c *gin.Context)
	CreateInvoice(c *gin.Context)
	GetInvoiceByID(c *gin.Context)
	ListInvoices(c *gin.Context)
	ListClientInvoices(c *gin.Context)
	UpdateInvoice(c *gin.Context)
	UpdateInvoiceStatus(c *gin.Context)
	DeleteInvoice(c *gin.Context)
}

// ReportHandlerInterface defines the methods needed by the report routes.
type ReportHandlerInterface interface {
	MonthlyRevenue(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ ClientHandlerInterface = (*ClientHandler)(nil)
var _ CatalogHandlerInterface = (*CatalogHandler)(nil)
var _ TaskHandlerInterface = (*TaskHandler)(nil)
var _ InvoiceHandlerInterface = (*InvoiceHandler)(nil)
var _ ReportHandlerInterface = (*ReportHandler)(nil)
