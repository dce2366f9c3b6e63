// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// LocalsUserContext - ключ Locals, под которым хранится контекст запроса.
const LocalsUserContext = "userContext"

type callerKey struct{}

// RequestContext возвращает обогащенный контекст запроса, сохраненный middleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(LocalsUserContext).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

func setRequestContext(ctx fiber.Ctx, userCtx context.Context) {
	ctx.Locals(LocalsUserContext, userCtx)
}

// WithCallerID сохраняет идентификатор вызывающего в контексте.
func WithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerKey{}, callerID)
}

// CallerID возвращает идентификатор вызывающего. Пустая строка, если заголовок не передан.
func CallerID(ctx context.Context) string {
	if callerID, ok := ctx.Value(callerKey{}).(string); ok {
		return callerID
	}
	return ""
}
