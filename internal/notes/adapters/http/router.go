// Package http содержит компоненты для HTTP сервера.
package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memnotes/internal/notes/adapters/http/middleware"
	"memnotes/internal/notes/adapters/http/notes"
	"memnotes/internal/notes/config"
	"memnotes/internal/notes/ports/api"
	"memnotes/pkg/logger"
)

// Сообщения ответов, не относящиеся к заметкам.
const (
	MsgRouteNotFound = "Route not found."
	HealthStatusOK   = "ok"
)

// NewApp создает fiber-приложение с настройками из конфигурации.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "memnotes",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCase api.NoteUseCase, cfg *config.HTTPConfig) error {
	notesHandler := notes.NewHandler(useCase)

	routes, err := RoutesFor(cfg.Routes, notesHandler)
	if err != nil {
		return err
	}

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware(cfg.RequestIDHeader))
	app.Use(middleware.NewCallerMiddleware(cfg.CallerHeader))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(ctx fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": HealthStatusOK})
	})

	routes.Register(app.Group(cfg.BasePath))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(notes.Response{
			Message: MsgRouteNotFound,
			Status:  fiber.StatusNotFound,
		})
	})

	return nil
}

// ErrorHandler отвечает конвертом API на ошибки, которые вернул fiber или обработчик.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := notes.MsgInternalError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		requestCtx := middleware.RequestContext(ctx)
		logger.Log(requestCtx).Error(requestCtx, "unhandled request error", zap.Error(err))
	}

	if sendErr := ctx.Status(code).JSON(notes.Response{Message: message, Status: code}); sendErr != nil {
		return fmt.Errorf("error sending error response: %w", sendErr)
	}
	return nil
}
