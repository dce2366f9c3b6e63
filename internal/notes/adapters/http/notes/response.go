package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"memnotes/internal/notes/app"
)

// Сообщения ответов клиенту.
const (
	MsgSuccess       = "Success!"
	MsgNoNotes       = "No notes have been created."
	MsgNoCallerNotes = "You have not created any notes yet."
	MsgNoteAdded     = "Note has been added!"
	MsgNoteUpdated   = "Note updated!"
	MsgNoteRemoved   = "Note removed!"
	MsgNoBody        = "Enter some data."
	MsgInvalidBody   = "Request body must be a JSON object."
	MsgNoteNotFound  = "Note does not exist."
	MsgInternalError = "Internal server error."
)

// Response - конверт всех ответов API заметок.
type Response struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(ctx fiber.Ctx, status int, message string, data any) error {
	if err := ctx.Status(status).JSON(Response{
		Message: message,
		Status:  status,
		Data:    data,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// respondEmpty отвечает на пустой список: только сообщение, без status и data.
func respondEmpty(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusOK).JSON(Response{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError отображает ошибку бизнес-логики в HTTP-статус и сообщение.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNoBodySupplied):
		return respond(ctx, fiber.StatusBadRequest, MsgNoBody, nil)
	case errors.Is(err, ErrInvalidBody):
		return respond(ctx, fiber.StatusBadRequest, MsgInvalidBody, nil)
	case errors.Is(err, app.ErrNotFound):
		return respond(ctx, fiber.StatusNotFound, MsgNoteNotFound, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return respond(ctx, fiberErr.Code, fiberErr.Message, nil)
	}

	return respond(ctx, fiber.StatusInternalServerError, MsgInternalError, nil)
}
