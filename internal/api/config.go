package api

import (
	"time"

	"chat-demo-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

type Option interface {
	apply(*fiber.Config)
}

type optionFunc func(c *fiber.Config)

func (f optionFunc) apply(c *fiber.Config) { f(c) }

// ReadTimeout sets read timeout for the fiber server
func ReadTimeout(d time.Duration) Option {
	return optionFunc(func(c *fiber.Config) {
		c.ReadTimeout = d
	})
}

// WriteTimeout sets write timeout for the fiber server
func WriteTimeout(d time.Duration) Option {
	return optionFunc(func(c *fiber.Config) {
		c.WriteTimeout = d
	})
}

// WithEnvConfig takes the server timeouts from the environment config
func WithEnvConfig(cfg config.EnvConfig) Option {
	return optionFunc(func(c *fiber.Config) {
		c.ReadTimeout = cfg.ReadTimeout
		c.WriteTimeout = cfg.WriteTimeout
	})
}
