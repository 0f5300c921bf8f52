package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hirematch/backend/auth"
	"github.com/hirematch/backend/config"
	_ "github.com/hirematch/backend/docs"
	"github.com/hirematch/backend/handlers"
	"github.com/hirematch/backend/lifecycle"
	"github.com/hirematch/backend/matching"
	"github.com/hirematch/backend/storage"
)

// @title HireMatch API
// @version 1.0
// @description Candidate-job matching and application lifecycle backend for the HireMatch job board.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hirematch.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize auth service (token verification only; issuance is external)
	jwtService := auth.NewJWTService(cfg)

	// Initialize matching and lifecycle engines
	batcher := matching.NewBatcher(cfg.MatchConcurrency, firestoreClient)
	engine := lifecycle.NewEngine(firestoreClient)

	// Create handlers
	matchHandler := handlers.NewMatchHandler(batcher, firestoreClient, cfg.DefaultTopN)
	appHandler := handlers.NewApplicationHandler(engine, firestoreClient)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(auth.AuthMiddleware(jwtService))
	{
		api.POST("/jobs/:jobId/match", matchHandler.MatchJob)
		api.GET("/jobs/:jobId/applications", matchHandler.ListJobApplications)

		api.POST("/candidates/:candidateId/match", matchHandler.MatchCandidate)

		api.GET("/applications/:id", appHandler.GetApplication)
		api.PUT("/applications/:id/status", appHandler.UpdateStatus)
		api.POST("/applications/:id/rematch", appHandler.Rematch)
		api.PUT("/applications/bulk-status", appHandler.BulkUpdateStatus)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
