// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"
	"errors"

	"memnotes/internal/notes/domain/entities"
)

// Ошибки репозитория.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrDuplicateID  = errors.New("note id already exists")
)

// NoteRepository определяет интерфейс упорядоченного хранилища заметок.
// Все методы возвращают копии, изменение результата не затрагивает хранилище.
type NoteRepository interface {
	// List возвращает все заметки в порядке добавления.
	List(ctx context.Context) ([]*entities.Note, error)
	// ListByUserID возвращает заметки с совпадающим userid в порядке добавления.
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)
	// Create добавляет заметку в конец коллекции.
	Create(ctx context.Context, note *entities.Note) error
	// GetByID возвращает заметку или nil, если она не найдена.
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	// Update заменяет заметку на ее позиции.
	Update(ctx context.Context, note *entities.Note) error
	// Delete удаляет заметку и возвращает ее последнее состояние.
	Delete(ctx context.Context, noteID string) (*entities.Note, error)
}
