package routes

import (
	"time"

	"mailscout/config"
	controller "mailscout/controllers"
	"mailscout/middleware"
	"mailscout/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func SetupAPIRoutes(app *fiber.App, log *logrus.Logger) {
	verifier := utils.NewVerifier(log)
	verifier.Timeout = config.AppConfig.ProbeTimeout
	verifier.From = config.AppConfig.ProbeFrom
	verifier.HeloHost = config.AppConfig.HeloHost

	emailController := controller.NewEmailController(verifier, log)
	domainController := controller.NewDomainController(utils.NewReconner(), log)

	// API group with versioning, rate limiting and access logging
	api := app.Group("/api/v1", middleware.APIRateLimiter(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Email intelligence routes
	email := api.Group("/email")
	email.Post("/verify", emailController.VerifyEmail)
	email.Post("/predict", emailController.PredictVariations)
	email.Get("/breaches/:email", emailController.CheckBreaches)

	// Domain reconnaissance routes
	domain := api.Group("/domain")
	domain.Get("/records", domainController.GetRecords)
	domain.Get("/whois", domainController.GetWhois)

	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, log *logrus.Logger) {
	// Liveness probe; deliberately checks nothing but the process itself
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"version":   config.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	SetupAPIRoutes(app, log)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
