package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/householdhq/tasks-api/services/tasks"
)

type Handler struct {
	Tasks *tasks.Service
	L     *logrus.Logger
}

func NewHandler(service *tasks.Service, l *logrus.Logger) *Handler {
	return &Handler{
		Tasks: service,
		L:     l,
	}
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func FiberErrorResponse(c *fiber.Ctx, httpStatus int, message string) error {
	return c.Status(httpStatus).JSON(ErrorResponse{Error: message})
}

func parseTaskID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
