// Package main starts the HTTP front end of the commission calculator.
package main

import (
	"commission/internal/config"
	"commission/internal/handlers"
	"commission/internal/logger"
	"commission/internal/services/policy"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("component", "server").Logger()

	provider := policy.NewProvider(policy.Endpoints{
		CashIn:           cfg.Policy.CashInURL,
		CashOutNatural:   cfg.Policy.CashOutNaturalURL,
		CashOutJuridical: cfg.Policy.CashOutJuridicalURL,
	}, cfg.Policy.Timeout)

	app := fiber.New(fiber.Config{
		BodyLimit: config.GetIntEnv("BODY_LIMIT", 4*1024*1024),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	handlers.SetupRoutes(app, handlers.NewCommissionHandler(provider, cfg.Currency, nil, log))

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
