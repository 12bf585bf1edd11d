package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "dengueapp-backend",
			"status":  "ok",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
