package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "dengueapp_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem certa
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
