package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader   = "X-Request-ID"
	RequestIDLocalKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or mints a UUID, echoes it back,
// and puts a request-scoped logger on the user context for zerolog.Ctx.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		reqLog := log.Logger.With().Str(RequestIDLocalKey, id).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
