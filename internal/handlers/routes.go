package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, commissionHandler *CommissionHandler) {
	app.Get("/health", HealthCheck)

	api := app.Group("/api")
	api.Post("/commissions", commissionHandler.Calculate)
}
