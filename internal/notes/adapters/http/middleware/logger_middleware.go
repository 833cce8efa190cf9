package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/pkg/logger"
)

// NewLoggerMiddleware logs every request with its status and latency.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx, ok := ctx.Locals("requestContext").(context.Context)
		if !ok {
			reqCtx = ctx.Context()
		}
		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		log := logger.Log(reqCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
		)

		log.Info(reqCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(reqCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(reqCtx, "Request completed", logFields...)
		return nil
	}
}
