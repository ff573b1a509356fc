package handlers

import (
	"time"

	"chat-demo-backend/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ISO-8601 with millisecond precision in UTC
const timestampLayout = "2006-01-02T15:04:05.000Z"

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.BackendStatus{
		Status:    "ok",
		Message:   "Backend is accessible",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}
