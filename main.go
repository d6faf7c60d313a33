package main

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mailscout/config"
	"mailscout/middleware"
	"mailscout/routes"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if config.AppConfig.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Initialize error reporting when a DSN is configured
	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
			Release:     config.Version,
		}); err != nil {
			logger.Fatalf("Failed to initialize Sentry: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: config.AppConfig.ProjectName,
	})

	// Add CORS middleware
	corsConfig := middleware.DefaultCORSConfig()
	if len(config.AppConfig.CORSOrigins) > 0 {
		corsConfig.AllowedOrigins = config.AppConfig.CORSOrigins
	}
	app.Use(middleware.CORS(corsConfig))

	// Setup routes
	routes.SetupRoutes(app, logger)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
