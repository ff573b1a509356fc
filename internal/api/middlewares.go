package api

import (
	"mime"
	"time"

	"chat-demo-backend/internal/zapadapter"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an id, echoed in the X-Request-ID response header
// and carried in the user context so that query logs can be correlated.
// A well-formed incoming id is kept.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if _, err := xid.FromString(id); err != nil {
			id = xid.New().String()
		}

		c.Locals("request_id", id)
		c.Set(requestIDHeader, id)
		c.SetUserContext(zapadapter.NewContextWithID(c.UserContext(), id))
		return c.Next()
	}
}

func accessLog(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// the error handler has not written the response yet
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		logger.Info("http request",
			zap.Any("id", c.Locals("request_id")),
			zap.String("method", c.Method()),
			zap.String("uri", c.OriginalURL()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}

// enforceJSON checks that bodies of POST, PUT and PATCH requests are JSON.
// A missing Content-Type is accepted and an empty body is left for the handler to read as {}.
func enforceJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		default:
			return c.Next()
		}

		if contentType := c.Get(fiber.HeaderContentType); contentType != "" {
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Malformed Content-Type header")
			}
			if mt != fiber.MIMEApplicationJSON {
				return fiber.NewError(fiber.StatusUnsupportedMediaType, "Content-Type header must be application/json")
			}
		}

		body := c.Body()
		if len(body) == 0 {
			return c.Next()
		}
		if err := fastjson.ValidateBytes(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Malformed JSON")
		}
		return c.Next()
	}
}
