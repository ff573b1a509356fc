package main

import (
	"log"

	"chat-demo-backend/internal/api"
	"chat-demo-backend/internal/api/routes"
	"chat-demo-backend/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal("Failed to parse config: ", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Connect to database
	db, err := config.ConnectDB(cfg, logger)
	if err != nil {
		sugar.Fatalw("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
		sugar.Info("Database is closed")
	}()

	// Run migrations
	if err := config.MigrateAllModels(db, cfg.DBMigrate); err != nil {
		sugar.Fatalw("Failed to migrate database", "error", err)
	}

	// Create and configure Fiber app
	app := api.NewServer(logger, api.WithEnvConfig(cfg))

	// Register routes
	routes.Register(app, routes.Deps{
		DB:        db,
		UsersFile: cfg.UsersFile,
		Logger:    sugar,
	})

	// Start server
	if err := api.StartServer(app, cfg.Addr(), sugar); err != nil {
		sugar.Errorw("Failed to start server", "error", err)
	}
}
