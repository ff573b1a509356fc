package handlers

import (
	"errors"

	"chat-demo-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// badRequest writes {"error": msg} with status 400 for input errors.
// Any other error is returned for the app error handler to answer with 500.
func badRequest(c *fiber.Ctx, err error) error {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
		})
	}
	return err
}
