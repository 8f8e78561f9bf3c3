package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/vitalis/internal/api"
	"github.com/terraincognita07/vitalis/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newApp(cfg *config.Config, database *gorm.DB, location *time.Location, log *zap.Logger) (*fiber.App, *api.Handler, error) {
	handler, err := api.NewHandler(database, cfg.SecretKey, location, cfg.CookieSecure, log)
	if err != nil {
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "Vitalis",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(corsMiddlewareConfig(cfg.CORSAllowOrigins)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler, nil
}

func corsMiddlewareConfig(allowOrigins string) cors.Config {
	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Authorization,Content-Type",
	}
}
