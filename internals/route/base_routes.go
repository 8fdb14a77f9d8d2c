// file: internals/route/base_routes.go
package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Cyberku API is running 🚀")
	})

	// Health check: ping DB + uptime proses
	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "down"
		} else if err := sqlDB.PingContext(c.UserContext()); err != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		env := os.Getenv("RAILWAY_ENVIRONMENT")
		if env == "" {
			env = "local"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":      "ok",
			"database":    dbStatus,
			"environment": env,
			"uptime":      time.Since(startTime).String(),
		})
	})

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
