package routes

import (
	"chat-demo-backend/internal/handlers"
	"chat-demo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerUsers(r fiber.Router, deps Deps) {
	userRepo := repo.NewUserRepository(deps.UsersFile)
	userHandler := handlers.NewUserHandler(userRepo, deps.Logger)

	r.Get("/users", userHandler.GetAllUsers)
	r.Post("/users", userHandler.CreateUser)
}
