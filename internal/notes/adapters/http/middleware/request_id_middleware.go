// Package middleware contains the HTTP middleware for the notes service.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/pkg/logger"
)

// HeaderRequestID is the inbound header carrying a client request id.
const HeaderRequestID = "X-Request-Id"

// NewRequestIDMiddleware attaches a request-scoped context carrying a request
// identifier. Handlers pick it up via Locals("requestContext").
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		reqCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		ctx.Locals("requestContext", reqCtx)

		if id, ok := logger.GetRequestID(reqCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
