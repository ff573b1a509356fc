package routes

import (
	"chat-demo-backend/internal/handlers"
	"chat-demo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerConversation(r fiber.Router, deps Deps) {
	// Initialize handler
	conversationRepo := repo.NewConversationRepository(deps.DB)
	conversationHandler := handlers.NewConversationHandler(conversationRepo)

	// Register routes
	r.Get("/conversation", conversationHandler.GetAllConversations)
	r.Post("/conversation", conversationHandler.CreateConversation)
	r.Get("/conversation/:conversationId", conversationHandler.GetConversationByID)
	r.Patch("/conversation/:conversationId", conversationHandler.UpdateConversation)
	r.Delete("/conversation/:conversationId", conversationHandler.DeleteConversation)
}
