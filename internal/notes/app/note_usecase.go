// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"memnotes/internal/notes/domain/entities"
	"memnotes/internal/notes/ports/api"
	"memnotes/internal/notes/ports/repositories"
	"memnotes/internal/notes/ports/services"
	"memnotes/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoBodySupplied = errors.New("no body supplied")
	ErrNotFound       = errors.New("note not found")
)

// Количество попыток выдать новый ID при коллизии.
const maxIDAttempts = 3

// Константы для логирования.
const (
	LogNoteCreated    = "note created"
	LogNoteUpdated    = "note updated"
	LogNoteDeleted    = "note deleted"
	LogIDCollision    = "generated note id already exists, retrying"
	LogPublishFailed  = "failed to publish note event"
	LogUpdateNoBody   = "update without body"
	LogCreateNoBody   = "create without body"
	LogNoteNotFound   = "note not found"
	LogListAllNotes   = "listing all notes"
	LogListUserNotes  = "listing caller notes"
	LogProtectedPatch = "protected keys removed from patch"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	ids      services.IDGenerator
	events   services.EventPublisher
}

var _ api.NoteUseCase = (*NoteUseCase)(nil)

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	ids services.IDGenerator,
	events services.EventPublisher,
) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		ids:      ids,
		events:   events,
	}
}

// ListAll возвращает все заметки в порядке создания.
func (uc *NoteUseCase) ListAll(ctx context.Context) ([]*entities.Note, error) {
	logger.Log(ctx).Debug(ctx, LogListAllNotes)

	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// ListMine возвращает заметки, созданные вызывающим. Пустой callerID
// соответствует заметкам, созданным без заголовка пользователя.
func (uc *NoteUseCase) ListMine(ctx context.Context, callerID string) ([]*entities.Note, error) {
	logger.Log(ctx).Debug(ctx, LogListUserNotes, zap.String(logger.CallerID, callerID))

	notes, err := uc.noteRepo.ListByUserID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list caller notes: %w", err)
	}
	return notes, nil
}

// CreateNote создает заметку из payload: выдает новый ID и проставляет владельца.
func (uc *NoteUseCase) CreateNote(ctx context.Context, payload *entities.Fields, callerID string) (*entities.Note, error) {
	log := logger.Log(ctx)

	if payload == nil {
		log.Debug(ctx, LogCreateNoBody)
		return nil, ErrNoBodySupplied
	}

	var note *entities.Note
	for attempt := 1; ; attempt++ {
		note = entities.NewNote(uc.ids.NewID(), callerID, payload)

		err := uc.noteRepo.Create(ctx, note)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrDuplicateID) || attempt >= maxIDAttempts {
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
		log.Warn(ctx, LogIDCollision, zap.String("note_id", note.ID), zap.Int("attempt", attempt))
	}

	log.Info(ctx, LogNoteCreated, zap.String("note_id", note.ID), zap.String(logger.CallerID, callerID))
	uc.publish(ctx, entities.EventNoteCreated, note)

	return note, nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		logger.Log(ctx).Debug(ctx, LogNoteNotFound, zap.String("note_id", noteID))
		return nil, ErrNotFound
	}
	return note, nil
}

// UpdateNote сливает patch поверх существующей заметки. Ключи id и userid
// из patch игнорируются. Отсутствие заметки проверяется раньше отсутствия тела.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, patch *entities.Fields) (*entities.Note, error) {
	log := logger.Log(ctx)

	note, err := uc.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if patch == nil {
		log.Debug(ctx, LogUpdateNoBody, zap.String("note_id", noteID))
		return nil, ErrNoBodySupplied
	}

	clean := patch.Clone()
	if clean.Has(entities.KeyID) || clean.Has(entities.KeyUserID) {
		log.Debug(ctx, LogProtectedPatch, zap.String("note_id", noteID))
		entities.StripProtected(clean)
	}

	note.Fields.Merge(clean)

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	log.Info(ctx, LogNoteUpdated, zap.String("note_id", noteID))
	uc.publish(ctx, entities.EventNoteUpdated, note)

	return note, nil
}

// DeleteNote удаляет заметку и возвращает ее состояние на момент удаления.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) (*entities.Note, error) {
	note, err := uc.noteRepo.Delete(ctx, noteID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			logger.Log(ctx).Debug(ctx, LogNoteNotFound, zap.String("note_id", noteID))
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	logger.Log(ctx).Info(ctx, LogNoteDeleted, zap.String("note_id", noteID))
	uc.publish(ctx, entities.EventNoteDeleted, note)

	return note, nil
}

// publish отправляет событие; ошибка доставки не влияет на результат операции.
func (uc *NoteUseCase) publish(ctx context.Context, eventType entities.EventType, note *entities.Note) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, entities.NewNoteEvent(eventType, note.Clone())); err != nil {
		logger.Log(ctx).Warn(ctx, LogPublishFailed,
			zap.String("event", string(eventType)),
			zap.String("note_id", note.ID),
			zap.Error(err))
	}
}
