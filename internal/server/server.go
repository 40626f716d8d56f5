package server

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/config"
	"github.com/siteforms/siteforms-api/internal/handlers"
	"github.com/siteforms/siteforms-api/internal/helpers"
	"github.com/siteforms/siteforms-api/internal/logger"
	"github.com/siteforms/siteforms-api/internal/middleware"
	"github.com/siteforms/siteforms-api/internal/services"
)

// Handler Definitions
var (
	healthHandler *handlers.HealthHandler
	formHandler   *handlers.FormHandler
	uploadHandler *handlers.UploadHandler

	// Configuration
	cfg *config.Config
)

// InitializeHandlers loads configuration, initializes the logger and wires
// up all handlers. It terminates the process on configuration errors.
func InitializeHandlers() {
	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Load Configuration ---
	var err error
	cfg, err = config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- Services ---
	sender := services.NewSenderFromConfig(cfg, logger.Log)
	emailService := services.NewFormEmailService(sender, cfg, logger.Log)
	uploadService := services.NewUploadService(cfg.UploadDir, logger.Log)

	// --- Handlers ---
	healthHandler = handlers.NewHealthHandler()
	formHandler = handlers.NewFormHandler(emailService)
	uploadHandler = handlers.NewUploadHandler(uploadService)

	logger.Info("Handlers initialized",
		zap.String("email_provider", cfg.EmailProvider),
		zap.String("upload_dir", cfg.UploadDir))
}

// InitializeRoutes registers middleware and all API routes on the router.
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.Health)

	// Serve stored uploads from the parent of the images directory so the
	// returned public paths resolve.
	router.Static("/uploads", filepath.Dir(cfg.UploadDir))

	api := router.Group("/api/v1")
	{
		forms := api.Group("/forms")
		{
			forms.POST("/submit", formHandler.SubmitForm)
		}

		uploads := api.Group("/uploads")
		{
			uploads.POST("/image", uploadHandler.UploadImage)
			uploads.POST("/image-url", uploadHandler.UploadImageFromURL)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}

	return cors.New(corsConfig)
}
