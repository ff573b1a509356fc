package handlers

import (
	"chat-demo-backend/internal/models"
	"chat-demo-backend/internal/repo"
	"chat-demo-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// Store errors, including a missing row, are returned as is and answered with 500 by the app error handler.
type ConversationHandler struct {
	repo repo.ConversationRepoInterface
}

func NewConversationHandler(repo repo.ConversationRepoInterface) *ConversationHandler {
	return &ConversationHandler{repo: repo}
}

// GetAllConversations lists conversations newest first
func (h *ConversationHandler) GetAllConversations(c *fiber.Ctx) error {
	limit, err := validate.Limit(c.Query("limit"))
	if err != nil {
		return badRequest(c, err)
	}

	conversations, err := h.repo.GetAllConversations(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(models.ConversationDTOs(conversations))
}

func (h *ConversationHandler) CreateConversation(c *fiber.Ctx) error {
	req, err := validate.CreateConversation(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	conversation, err := h.repo.CreateConversation(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(conversation.DTO())
}

func (h *ConversationHandler) GetConversationByID(c *fiber.Ctx) error {
	id, err := validate.ID(c.Params("conversationId"), "conversationId")
	if err != nil {
		return badRequest(c, err)
	}

	conversation, err := h.repo.GetConversationByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(conversation.DTO())
}

func (h *ConversationHandler) UpdateConversation(c *fiber.Ctx) error {
	id, err := validate.ID(c.Params("conversationId"), "conversationId")
	if err != nil {
		return badRequest(c, err)
	}
	update, err := validate.UpdateConversation(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	conversation, err := h.repo.UpdateConversation(c.UserContext(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(conversation.DTO())
}

func (h *ConversationHandler) DeleteConversation(c *fiber.Ctx) error {
	id, err := validate.ID(c.Params("conversationId"), "conversationId")
	if err != nil {
		return badRequest(c, err)
	}

	conversation, err := h.repo.DeleteConversation(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(conversation.DTO())
}
