package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Request-ID"

// New returns a middleware that assigns a unique request id to every
// request. The id is stored in locals under "request_id" so handlers can
// correlate log entries, and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("request_id", id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}
