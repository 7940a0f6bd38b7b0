package routes

import (
	"log"

	"timebill-api/internal/api/handlers"
	"timebill-api/internal/api/middleware"
	"timebill-api/internal/app"
	"timebill-api/internal/services"
	"timebill-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Build Services ---
	userService := services.NewUserService(
		postgres.NewUserRepo(app.EntClient),
		app.RedisClient,
		app.Config.JWT.Secret,
		app.Config.JWT.Expiration,
		app.Config.JWT.RefreshExpiration,
	)
	clientService := services.NewClientService(app.EntClient)
	catalogService := services.NewCatalogService(app.EntClient)
	taskService := services.NewTaskService(app.EntClient)
	invoiceService := services.NewInvoiceService(app.EntClient)
	reportService := services.NewReportService(app.EntClient)

	// --- Build Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	clientHandler := handlers.NewClientHandler(clientService, app.Validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, app.Validator)
	taskHandler := handlers.NewTaskHandler(taskService, app.Validator)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, app.Validator)
	reportHandler := handlers.NewReportHandler(reportService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, userHandler, authMiddleware)
	RegisterClientRoutes(apiV1, clientHandler, taskHandler, invoiceHandler, authMiddleware)
	RegisterServiceRoutes(apiV1, catalogHandler, authMiddleware)
	RegisterTaskRoutes(apiV1, taskHandler, authMiddleware)
	RegisterInvoiceRoutes(apiV1, invoiceHandler, authMiddleware)
	RegisterReportRoutes(apiV1, reportHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
