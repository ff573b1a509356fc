package handlers

import (
	"errors"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SumHandler struct{}

func NewSumHandler() *SumHandler {
	return &SumHandler{}
}

// Sum adds up the numbers array of the request body
func (h *SumHandler) Sum(c *fiber.Ctx) error {
	req, err := validate.Sum(c.Body())
	if err != nil {
		var verr *validate.Error
		if !errors.As(err, &verr) {
			return err
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "Bad Request",
			Message: verr.Message,
		})
	}

	var sum float64
	for _, n := range req.Numbers {
		sum += n
	}
	return c.JSON(dto.SumResponse{Sum: sum})
}
