package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/householdhq/tasks-api/config"
)

// FiberMiddleware provides Fiber's built-in middlewares.
// See: https://docs.gofiber.io/api/middleware
func FiberMiddleware(a *fiber.App) {
	a.Use(
		// Add simple logger.
		logger.New(logger.Config{
			Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
		}),
		// CORS restricted to the single trusted frontend origin.
		cors.New(cors.Config{
			AllowOrigins: config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		}),
		// recover from panic
		recover.New(),
	)
}
