package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"

	"memnotes/pkg/logger"
)

// NewRequestIDMiddleware присваивает запросу идентификатор из заголовка header или генерирует новый.
// Идентификатор возвращается клиенту в том же заголовке и попадает во все записи лога запроса.
func NewRequestIDMiddleware(header string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(RequestContext(ctx), utils.CopyString(ctx.Get(header)))

		requestID, _ := logger.GetRequestID(requestCtx)
		ctx.Set(header, requestID)

		setRequestContext(ctx, requestCtx)

		return ctx.Next()
	}
}
