// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memnotes/internal/notes/adapters/http/middleware"
	"memnotes/internal/notes/ports/api"
	"memnotes/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerListMine   = "handling list caller notes request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidRequestBody = "invalid request body"
)

// ParamID - имя параметра маршрута с идентификатором заметки.
const ParamID = "id"

// ParamListType - имя параметра маршрута с типом списка; значение ListTypeMine выбирает заметки вызывающего.
const (
	ParamListType = "type"
	ListTypeMine  = "my"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{
		notes: notes,
	}
}

// ListNotes возвращает все заметки.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes, err := h.notes.ListAll(userCtx)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if len(notes) == 0 {
		return respondEmpty(ctx, MsgNoNotes)
	}
	return respond(ctx, fiber.StatusOK, MsgSuccess, notes)
}

// ListMyNotes возвращает заметки вызывающего.
func (h *Handler) ListMyNotes(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListMyNotes"))
	log.Debug(userCtx, LogHandlerListMine)

	notes, err := h.notes.ListMine(userCtx, middleware.CallerID(userCtx))
	if err != nil {
		log.Error(userCtx, "failed to list caller notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if len(notes) == 0 {
		return respondEmpty(ctx, MsgNoCallerNotes)
	}
	return respond(ctx, fiber.StatusOK, MsgSuccess, notes)
}

// ListByType выбирает список по параметру маршрута: "my" - заметки вызывающего, иначе все.
func (h *Handler) ListByType(ctx fiber.Ctx) error {
	if ctx.Params(ParamListType) == ListTypeMine {
		return h.ListMyNotes(ctx)
	}
	return h.ListNotes(ctx)
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	payload, err := decodeBody(ctx.Body())
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return handleError(ctx, err)
	}

	note, err := h.notes.CreateNote(userCtx, payload, middleware.CallerID(userCtx))
	if err != nil {
		log.Debug(userCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respond(ctx, fiber.StatusCreated, MsgNoteAdded, note)
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamID)
	log := logger.Log(userCtx).With(
		zap.String("handler", "Handler.GetNote"),
		zap.String("note_id", noteID))
	log.Debug(userCtx, LogHandlerGetNote)

	note, err := h.notes.GetNote(userCtx, noteID)
	if err != nil {
		log.Debug(userCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respond(ctx, fiber.StatusOK, MsgSuccess, note)
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamID)
	log := logger.Log(userCtx).With(
		zap.String("handler", "Handler.UpdateNote"),
		zap.String("note_id", noteID))
	log.Debug(userCtx, LogHandlerUpdateNote)

	patch, err := decodeBody(ctx.Body())
	if err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return handleError(ctx, err)
	}

	note, err := h.notes.UpdateNote(userCtx, noteID, patch)
	if err != nil {
		log.Debug(userCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respond(ctx, fiber.StatusOK, MsgNoteUpdated, note)
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamID)
	log := logger.Log(userCtx).With(
		zap.String("handler", "Handler.DeleteNote"),
		zap.String("note_id", noteID))
	log.Debug(userCtx, LogHandlerDeleteNote)

	note, err := h.notes.DeleteNote(userCtx, noteID)
	if err != nil {
		log.Debug(userCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respond(ctx, fiber.StatusOK, MsgNoteRemoved, note)
}
