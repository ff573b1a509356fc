package api

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewServer returns a fiber app with the global middleware installed. Routes are registered separately.
func NewServer(logger *zap.Logger, opts ...Option) *fiber.App {
	cfg := fiber.Config{
		ErrorHandler: customErrorHandler(logger),
		AppName:      "Chat Demo Backend",
	}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	app := fiber.New(cfg)

	// Global middleware
	app.Use(recover.New())
	app.Use(requestID())
	app.Use(accessLog(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(enforceJSON())

	return app
}

// customErrorHandler answers every error a handler returns with {"error": message}.
// Framework errors keep their status; anything else, store failures included, is a 500.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		fields := []zap.Field{
			zap.Any("id", c.Locals("request_id")),
			zap.String("method", c.Method()),
			zap.String("uri", c.OriginalURL()),
			zap.Int("status", code),
			zap.Error(err),
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

// StartServer listens on addr until SIGINT or SIGTERM, then shuts the app down gracefully
func StartServer(app *fiber.App, addr string, logger *zap.SugaredLogger) error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down HTTP server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Errorf("app.Shutdown: %v", err)
		}
		logger.Info("HTTP server is stopped")

		close(idleConnsClosed)
	}()

	logger.Infof("Starting HTTP server on %s", addr)
	if err := app.Listen(addr); err != nil {
		return err
	}

	<-idleConnsClosed
	return nil
}
