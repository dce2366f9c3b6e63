package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memnotes/pkg/logger"
)

// MsgInternalError - сообщение клиенту при панике обработчика.
const MsgInternalError = "Internal server error."

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := RequestContext(ctx)

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			log := logger.Log(requestCtx)
			log.Error(requestCtx, "server panic",
				zap.String("error", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())),
			)

			err = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": MsgInternalError,
				"status":  fiber.StatusInternalServerError,
			})
			if err != nil {
				log.Error(requestCtx, "failed to send error response after panic", zap.Error(err))
			}
		}()

		return ctx.Next()
	}
}
