package routes

import (
	"chat-demo-backend/internal/handlers"
	"chat-demo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerMessages(r fiber.Router, deps Deps) {
	messageRepo := repo.NewMessageRepository(deps.DB)
	messageHandler := handlers.NewMessageHandler(messageRepo)

	r.Get("/messages", messageHandler.GetAllMessages)
	r.Post("/messages", messageHandler.CreateMessage)
	r.Get("/messages/:conversationId", messageHandler.GetMessagesByConversationID)
	r.Put("/messages/:id", messageHandler.UpdateMessage)
	r.Delete("/messages/:messageId", messageHandler.DeleteMessage)
}
