package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"go.uber.org/zap"

	"memnotes/pkg/logger"
)

// NewCallerMiddleware читает идентификатор вызывающего из заголовка header.
// Значение не проверяется: сервис доверяет клиенту. Строка копируется, так как
// fasthttp переиспользует буфер запроса, а идентификатор сохраняется в заметке.
func NewCallerMiddleware(header string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		callerID := utils.CopyString(ctx.Get(header))
		requestCtx := WithCallerID(RequestContext(ctx), callerID)

		if callerID != "" {
			log := logger.Log(requestCtx).With(zap.String(logger.CallerID, callerID))
			requestCtx = logger.NewContext(requestCtx, log)
		}
		setRequestContext(ctx, requestCtx)

		return ctx.Next()
	}
}
