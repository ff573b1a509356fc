package handlers

import (
	"errors"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"
	"chat-demo-backend/internal/repo"
	"chat-demo-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler answers its own failures with {error, message} bodies instead of the app error handler
type UserHandler struct {
	repo   repo.UserRepoInterface
	logger *zap.SugaredLogger
}

func NewUserHandler(repo repo.UserRepoInterface, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{repo: repo, logger: logger}
}

// GetAllUsers lists users, filtered by the search query parameter when present
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	var (
		users []models.User
		err   error
	)
	if search := c.Query("search"); search != "" {
		users, err = h.repo.SearchUsers(c.UserContext(), search)
	} else {
		users, err = h.repo.GetAllUsers(c.UserContext())
	}
	if err != nil {
		h.logger.Errorw("failed to read users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to retrieve users",
		})
	}
	return c.JSON(models.UserDTOs(users))
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	req, fields, err := validate.CreateUser(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError{
			Error:   "Validation Error",
			Message: err.Error(),
		})
	}
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError{
			Error:   "Validation Error",
			Message: "Invalid user data",
			Fields:  fields,
		})
	}

	user, err := h.repo.CreateUser(c.UserContext(), req)
	if errors.Is(err, repo.ErrEmailExists) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError{
			Error:   "Validation Error",
			Message: "Email already exists",
			Fields:  map[string]string{"email": "A user with this email already exists"},
		})
	}
	if err != nil {
		h.logger.Errorw("failed to create user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create user",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(user.DTO())
}
