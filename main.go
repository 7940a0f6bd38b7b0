package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"timebill-api/config"
	"timebill-api/internal/app"
	"timebill-api/internal/database"
	"timebill-api/internal/server"

	"github.com/go-playground/validator/v10"
)

// @title           TimeBill Pro API
// @version         1.0
// @description     Billing API for freelancers: clients, billable tasks, invoices and payment history.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	entClient, err := database.NewEntClient(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer entClient.Close()

	// Apply schema changes on startup
	if err := entClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("Failed to run schema migration: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		EntClient:   entClient,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
