package handlers

import (
	"chat-demo-backend/internal/models"
	"chat-demo-backend/internal/repo"
	"chat-demo-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	repo repo.MessageRepoInterface
}

func NewMessageHandler(repo repo.MessageRepoInterface) *MessageHandler {
	return &MessageHandler{repo: repo}
}

func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	req, err := validate.CreateMessage(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	message, err := h.repo.CreateMessage(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(message.DTO())
}

// GetAllMessages lists messages of every conversation, newest first
func (h *MessageHandler) GetAllMessages(c *fiber.Ctx) error {
	limit, err := validate.Limit(c.Query("limit"))
	if err != nil {
		return badRequest(c, err)
	}

	messages, err := h.repo.GetAllMessages(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(models.MessageDTOs(messages))
}

// GetMessagesByConversationID lists one conversation in chronological order
func (h *MessageHandler) GetMessagesByConversationID(c *fiber.Ctx) error {
	conversationID, err := validate.ID(c.Params("conversationId"), "conversationId")
	if err != nil {
		return badRequest(c, err)
	}
	limit, err := validate.Limit(c.Query("limit"))
	if err != nil {
		return badRequest(c, err)
	}

	messages, err := h.repo.GetMessagesByConversationID(c.UserContext(), conversationID, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.MessageDTOs(messages))
}

func (h *MessageHandler) UpdateMessage(c *fiber.Ctx) error {
	id, err := validate.ID(c.Params("id"), "id")
	if err != nil {
		return badRequest(c, err)
	}
	update, err := validate.UpdateMessage(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	message, err := h.repo.UpdateMessage(c.UserContext(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(message.DTO())
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := validate.ID(c.Params("messageId"), "messageId")
	if err != nil {
		return badRequest(c, err)
	}

	message, err := h.repo.DeleteMessage(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(message.DTO())
}
