package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/householdhq/tasks-api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Household Tasks API",
		})
	})

	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api")

	// static paths registered before /:id so they are not captured as ids
	taskRoutes := api.Group("/tasks")
	taskRoutes.Get("/", handlers.GetAllTasks(h))
	taskRoutes.Post("/", handlers.CreateTask(h))
	taskRoutes.Get("/overdue", handlers.GetOverdueTasks(h))
	taskRoutes.Get("/due", handlers.GetTasksDueBetween(h))
	taskRoutes.Get("/status/:isPaid", handlers.GetTasksByStatus(h))
	taskRoutes.Get("/category/:category", handlers.GetTasksByCategory(h))
	taskRoutes.Get("/:id", handlers.GetTask(h))
	taskRoutes.Put("/:id", handlers.UpdateTask(h))
	taskRoutes.Patch("/:id/complete", handlers.ToggleTaskCompletion(h))
	taskRoutes.Delete("/:id", handlers.DeleteTask(h))
}
