package middleware

import (
	contextPkg "PaperPath/pkg/context"
	"PaperPath/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"time"
)

const RequestIDKey = contextPkg.RequestIDHeader

const maxRequestIDLength = 64

// NewRequestIDMiddleware reuses a well-formed X-Request-ID from the client and
// mints a ULID otherwise. The id is echoed on the response.
func NewRequestIDMiddleware() fiber.Handler {
	utilsInstance := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if !validRequestID(requestID) {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
