// Package memory implements the note repository on top of a process-local ordered slice.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"memnotes/internal/notes/domain/entities"
	"memnotes/internal/notes/ports/repositories"
)

// NoteRepository хранит заметки в памяти процесса в порядке добавления.
type NoteRepository struct {
	mu    sync.RWMutex
	notes []*entities.Note
}

// NewNoteRepository создает пустое хранилище.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{}
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// List возвращает копии всех заметок.
func (r *NoteRepository) List(_ context.Context) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Note, 0, len(r.notes))
	for _, n := range r.notes {
		result = append(result, n.Clone())
	}
	return result, nil
}

// ListByUserID возвращает копии заметок пользователя.
func (r *NoteRepository) ListByUserID(_ context.Context, userID string) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			result = append(result, n.Clone())
		}
	}
	return result, nil
}

// Create добавляет копию заметки в конец коллекции.
func (r *NoteRepository) Create(_ context.Context, note *entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(note.ID) >= 0 {
		return fmt.Errorf("create note %s: %w", note.ID, repositories.ErrDuplicateID)
	}

	r.notes = append(r.notes, note.Clone())
	return nil
}

// GetByID возвращает копию заметки или nil.
func (r *NoteRepository) GetByID(_ context.Context, noteID string) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(noteID)
	if idx < 0 {
		return nil, nil
	}
	return r.notes[idx].Clone(), nil
}

// Update заменяет заметку с тем же ID, не меняя ее позицию.
func (r *NoteRepository) Update(_ context.Context, note *entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(note.ID)
	if idx < 0 {
		return fmt.Errorf("update note %s: %w", note.ID, repositories.ErrNoteNotFound)
	}

	r.notes[idx] = note.Clone()
	return nil
}

// Delete удаляет заметку, сохраняя относительный порядок остальных.
func (r *NoteRepository) Delete(_ context.Context, noteID string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(noteID)
	if idx < 0 {
		return nil, fmt.Errorf("delete note %s: %w", noteID, repositories.ErrNoteNotFound)
	}

	removed := r.notes[idx]
	r.notes = slices.Delete(r.notes, idx, idx+1)
	return removed, nil
}

// Len возвращает количество заметок.
func (r *NoteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// indexOf выполняет линейный поиск, вызывать под блокировкой.
func (r *NoteRepository) indexOf(noteID string) int {
	for i, n := range r.notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}
