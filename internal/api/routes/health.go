package routes

import (
	"chat-demo-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerHealth(r fiber.Router) {
	healthHandler := handlers.NewHealthHandler()

	r.Get("/health", healthHandler.Status)
}

func registerSum(r fiber.Router) {
	sumHandler := handlers.NewSumHandler()

	r.Post("/sum", sumHandler.Sum)
}
