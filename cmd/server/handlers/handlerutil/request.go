package handlerutil

import (
	"log/slog"

	"notes-api/cmd/server/handlers/httperr"

	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes the JSON body into req. Any decode failure becomes a
// 400 ErrorResponse before the service is reached.
func ParseBody(c *fiber.Ctx, req any, log *slog.Logger, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		log.Warn("failed to parse request body", "handler", handlerName, "path", c.Path(), "error", err)
		return httperr.Fail(httperr.ErrMalformedBody)
	}
	return nil
}
