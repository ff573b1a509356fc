package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the stores and logger shared by the route groups
type Deps struct {
	DB        *gorm.DB
	UsersFile string
	Logger    *zap.SugaredLogger
}

func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	registerHealth(api)
	registerSum(api)
	registerConversation(api, deps)
	registerMessages(api, deps)
	registerUsers(api, deps)
}
