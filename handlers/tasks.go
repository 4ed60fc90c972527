package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/householdhq/tasks-api/models"
	"github.com/householdhq/tasks-api/services/tasks"
)

// @Summary List all tasks.
// @Description fetch every task, sorted ascending by due date.
// @Tags tasks
// @Produce json
// @Success 200 {object} []models.Task
// @Router /api/tasks [get]
func GetAllTasks(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		allTasks, err := h.Tasks.GetAllTasks(c.Context())
		if err != nil {
			h.L.Errorf("failed listing tasks: %v", err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to list tasks")
		}
		return c.Status(fiber.StatusOK).JSON(allTasks)
	}
}

// @Summary Get a single task.
// @Description fetch a task by its id.
// @Tags tasks
// @Param id path int true "Task ID"
// @Produce json
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [get]
func GetTask(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseTaskID(c)
		if err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid task id")
		}

		task, err := h.Tasks.GetTaskByID(c.Context(), id)
		if err != nil {
			h.L.Errorf("failed getting task %d: %v", id, err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to get task")
		}
		if task == nil {
			return FiberErrorResponse(c, fiber.StatusNotFound, "task not found")
		}
		return c.Status(fiber.StatusOK).JSON(task)
	}
}

// @Summary Create a task.
// @Description create a single task; the id is assigned by storage.
// @Tags tasks
// @Accept json
// @Param task body models.Task true "Task to create"
// @Produce json
// @Success 201 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Router /api/tasks [post]
func CreateTask(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		task := new(models.Task)
		if err := c.BodyParser(task); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "request body malformed")
		}
		if err := task.Validate(); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		created, err := h.Tasks.CreateTask(c.Context(), task)
		if err != nil {
			h.L.Errorf("failed creating task: %v", err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to create task")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// @Summary Update a task.
// @Description full replace: every stored field is overwritten from the body.
// @Tags tasks
// @Accept json
// @Param id path int true "Task ID"
// @Param task body models.Task true "Replacement fields"
// @Produce json
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [put]
func UpdateTask(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseTaskID(c)
		if err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid task id")
		}

		task := new(models.Task)
		if err = c.BodyParser(task); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "request body malformed")
		}
		if err = task.Validate(); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		updated, err := h.Tasks.UpdateTask(c.Context(), id, task)
		if errors.Is(err, tasks.ErrNotFound) {
			return FiberErrorResponse(c, fiber.StatusNotFound, "task not found")
		}
		if err != nil {
			h.L.Errorf("failed updating task %d: %v", id, err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to update task")
		}
		return c.Status(fiber.StatusOK).JSON(updated)
	}
}

// @Summary Toggle a task's paid status.
// @Description flip the paid flag of a task.
// @Tags tasks
// @Param id path int true "Task ID"
// @Produce json
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id}/complete [patch]
func ToggleTaskCompletion(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseTaskID(c)
		if err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid task id")
		}

		toggled, err := h.Tasks.ToggleTaskCompletion(c.Context(), id)
		if errors.Is(err, tasks.ErrNotFound) {
			return FiberErrorResponse(c, fiber.StatusNotFound, "task not found")
		}
		if err != nil {
			h.L.Errorf("failed toggling task %d: %v", id, err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to toggle task")
		}
		return c.Status(fiber.StatusOK).JSON(toggled)
	}
}

// @Summary Delete a task.
// @Description remove a task by its id.
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{id} [delete]
func DeleteTask(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := parseTaskID(c)
		if err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid task id")
		}

		err = h.Tasks.DeleteTask(c.Context(), id)
		if errors.Is(err, tasks.ErrNotFound) {
			return FiberErrorResponse(c, fiber.StatusNotFound, "task not found")
		}
		if err != nil {
			h.L.Errorf("failed deleting task %d: %v", id, err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to delete task")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// @Summary List tasks by paid status.
// @Description fetch all tasks whose paid flag matches the path value.
// @Tags tasks
// @Param isPaid path bool true "Paid status"
// @Produce json
// @Success 200 {object} []models.Task
// @Failure 400 {object} ErrorResponse
// @Router /api/tasks/status/{isPaid} [get]
func GetTasksByStatus(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		paid, err := strconv.ParseBool(c.Params("isPaid"))
		if err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid paid status")
		}

		byStatus, err := h.Tasks.GetTasksByStatus(c.Context(), paid)
		if err != nil {
			h.L.Errorf("failed listing tasks by status: %v", err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to list tasks")
		}
		return c.Status(fiber.StatusOK).JSON(byStatus)
	}
}

// @Summary List tasks by category.
// @Description fetch all tasks with an exactly matching category label.
// @Tags tasks
// @Param category path string true "Category"
// @Produce json
// @Success 200 {object} []models.Task
// @Router /api/tasks/category/{category} [get]
func GetTasksByCategory(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		byCategory, err := h.Tasks.GetTasksByCategory(c.Context(), c.Params("category"))
		if err != nil {
			h.L.Errorf("failed listing tasks by category: %v", err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to list tasks")
		}
		return c.Status(fiber.StatusOK).JSON(byCategory)
	}
}

// @Summary List tasks due in a date range.
// @Description fetch all tasks with from <= dueDate <= to.
// @Tags tasks
// @Param from query string true "Range start (yyyy-mm-dd)"
// @Param to query string true "Range end (yyyy-mm-dd)"
// @Produce json
// @Success 200 {object} []models.Task
// @Failure 400 {object} ErrorResponse
// @Router /api/tasks/due [get]
func GetTasksDueBetween(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")
		if _, err := time.Parse(models.DateLayout, from); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid from: must be a yyyy-mm-dd date")
		}
		if _, err := time.Parse(models.DateLayout, to); err != nil {
			return FiberErrorResponse(c, fiber.StatusBadRequest, "invalid to: must be a yyyy-mm-dd date")
		}

		dueBetween, err := h.Tasks.GetTasksDueBetween(c.Context(), from, to)
		if err != nil {
			h.L.Errorf("failed listing tasks due between %s and %s: %v", from, to, err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to list tasks")
		}
		return c.Status(fiber.StatusOK).JSON(dueBetween)
	}
}

// @Summary List overdue tasks.
// @Description fetch all unpaid tasks due strictly before today.
// @Tags tasks
// @Produce json
// @Success 200 {object} []models.Task
// @Router /api/tasks/overdue [get]
func GetOverdueTasks(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		overdue, err := h.Tasks.GetOverdueTasks(c.Context())
		if err != nil {
			h.L.Errorf("failed listing overdue tasks: %v", err)
			return FiberErrorResponse(c, fiber.StatusInternalServerError, "failed to list tasks")
		}
		return c.Status(fiber.StatusOK).JSON(overdue)
	}
}
